package account

import (
	"context"
	"strings"

	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

func (s *DefaultAccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := account.Public()
	return &public, nil
}

func (s *DefaultAccountService) GetAll(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.PublicAccounts(accounts), nil
}

// ListTutors returns tutors, optionally filtered by approval.
func (s *DefaultAccountService) ListTutors(ctx context.Context, approved *bool) ([]models.Account, error) {
	tutors, err := s.Repo.ListByRole(ctx, models.RoleTutor)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return models.PublicAccounts(tutors), nil
	}
	out := []models.Account{}
	for _, t := range tutors {
		if t.Approved == *approved {
			out = append(out, t.Public())
		}
	}
	return out, nil
}

func (s *DefaultAccountService) ListStudents(ctx context.Context) ([]models.Account, error) {
	students, err := s.Repo.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	return models.PublicAccounts(students), nil
}

// Update applies a partial profile update. Email and phone stay unique.
func (s *DefaultAccountService) Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		return nil, err
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email, ok := fields["email"].(string); ok {
		email = strings.TrimSpace(email)
		fields["email"] = email
		if email != current.Email {
			if other, err := s.Repo.FindByEmail(ctx, email); err != nil {
				return nil, err
			} else if other != nil {
				return nil, utils.Duplicate("email %s is already registered", email)
			}
		}
	}
	if phone, ok := fields["phone"].(string); ok && phone != current.Phone {
		if other, err := s.Repo.FindByPhone(ctx, phone); err != nil {
			return nil, err
		} else if other != nil {
			return nil, utils.Duplicate("phone %s is already registered", phone)
		}
	}

	updated, err := s.Repo.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("Account updated", zap.String("accountID", id), zap.Int("fields", len(fields)))
	public := updated.Public()
	return &public, nil
}

// ToggleFavorite adds the tutor to the student's favorites, or removes it if present.
func (s *DefaultAccountService) ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error) {
	student, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, utils.Validation("only students can keep favorites")
	}
	tutor, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !tutor.IsTutor() {
		return nil, utils.Validation("account %s is not a tutor", tutorID)
	}
	return s.Repo.ToggleFavorite(ctx, studentID, tutorID)
}

// GetFavorites resolves the student's favorite tutor ids, skipping removed accounts.
func (s *DefaultAccountService) GetFavorites(ctx context.Context, studentID string) ([]models.Account, error) {
	student, err := s.Repo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	favorites := []models.Account{}
	for _, id := range student.FavoriteTutors {
		tutor, err := s.Repo.GetByID(ctx, id)
		if utils.IsKind(err, utils.KindNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, tutor.Public())
	}
	return favorites, nil
}

// SetApproval is the only path that changes a tutor's approved flag.
func (s *DefaultAccountService) SetApproval(ctx context.Context, tutorID string, approved bool) (*models.Account, error) {
	tutor, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !tutor.IsTutor() {
		return nil, utils.Validation("account %s is not a tutor", tutorID)
	}

	updated, err := s.Repo.Patch(ctx, tutorID, map[string]any{"approved": approved})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Tutor approval changed", zap.String("tutorID", tutorID), zap.Bool("approved", approved))
	public := updated.Public()
	return &public, nil
}
