package accountRepo

import (
	"context"
	"time"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

// DocumentAccountRepo implements AccountRepository on the users collection.
type DocumentAccountRepo struct {
	store *document.CollectionRepository
}

func NewDocumentAccountRepo(store *document.CollectionRepository) AccountRepository {
	return &DocumentAccountRepo{store: store}
}

func (r *DocumentAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	accounts, err := document.List[models.Account](ctx, r.store, document.Users)
	if err != nil {
		return nil, utils.Persistence("load accounts", err)
	}
	return accounts, nil
}

func (r *DocumentAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, func(a models.Account) bool { return a.ID == id }, utils.NotFound("account %s not found", id))
}

func (r *DocumentAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, func(a models.Account) bool { return a.Email == email }, nil)
}

func (r *DocumentAccountRepo) FindByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return r.findOne(ctx, func(a models.Account) bool { return phone != "" && a.Phone == phone }, nil)
}

func (r *DocumentAccountRepo) ListByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	accounts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Account{}
	for _, a := range accounts {
		if a.Role == role {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *DocumentAccountRepo) Create(ctx context.Context, account *models.Account) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		accounts, err := document.Load[models.Account](tx, document.Users)
		if err != nil {
			return err
		}
		if err := checkUnique(accounts, "", account.Email, account.Phone); err != nil {
			return err
		}
		return document.Append(tx, document.Users, *account)
	})
	return utils.Persistence("create account", err)
}

func (r *DocumentAccountRepo) Patch(ctx context.Context, id string, fields map[string]any) (*models.Account, error) {
	var updated models.Account
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		accounts, err := document.Load[models.Account](tx, document.Users)
		if err != nil {
			return err
		}
		n, err := document.Update(tx, document.Users, func(a *models.Account) (bool, error) {
			if a.ID != id {
				return false, nil
			}
			merged, err := document.Merge(*a, fields)
			if err != nil {
				return false, err
			}
			merged.ID = a.ID
			if err := checkUnique(accounts, id, merged.Email, merged.Phone); err != nil {
				return false, err
			}
			now := time.Now().UTC()
			merged.UpdatedAt = &now
			*a = merged
			updated = merged
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("account %s not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, utils.Persistence("update account", err)
	}
	return &updated, nil
}

func (r *DocumentAccountRepo) ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error) {
	var favorites []string
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		n, err := document.Update(tx, document.Users, func(a *models.Account) (bool, error) {
			if a.ID != studentID {
				return false, nil
			}
			favorites = toggle(a.FavoriteTutors, tutorID)
			a.FavoriteTutors = favorites
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("account %s not found", studentID)
		}
		return nil
	})
	if err != nil {
		return nil, utils.Persistence("toggle favorite", err)
	}
	return favorites, nil
}

func (r *DocumentAccountRepo) findOne(ctx context.Context, match func(models.Account) bool, missing error) (*models.Account, error) {
	accounts, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if match(accounts[i]) {
			return &accounts[i], nil
		}
	}
	return nil, missing
}

// checkUnique rejects an email or phone already held by an account other than selfID.
func checkUnique(accounts []models.Account, selfID, email, phone string) error {
	for _, a := range accounts {
		if a.ID == selfID {
			continue
		}
		if a.Email == email {
			return utils.Duplicate("email %s is already registered", email)
		}
		if phone != "" && a.Phone == phone {
			return utils.Duplicate("phone %s is already registered", phone)
		}
	}
	return nil
}

func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, id)
	}
	return out
}
