package account

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"thanawyia/models"
	"thanawyia/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// VerifyPasswordComplexity requires eight characters with letters and digits.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return utils.Validation("password must be at least 8 characters long")
	}
	if !hasLetter.MatchString(pw) {
		return utils.Validation("password must include at least one letter")
	}
	if !hasNumber.MatchString(pw) {
		return utils.Validation("password must include at least one number")
	}
	return nil
}

// Register creates a student or tutor account. Tutors start unapproved.
func (s *DefaultAccountService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	logger := utils.GetLogger()

	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.Duplicate("email %s is already registered", req.Email)
	}
	if existing, err := s.Repo.FindByPhone(ctx, req.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, utils.Duplicate("phone %s is already registered", req.Phone)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.BcryptCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	account := &models.Account{
		ID:        fmt.Sprintf("%s_%s", req.Role, uuid.New().String()),
		Role:      req.Role,
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		CreatedAt: s.Clock().UTC(),
	}
	switch req.Role {
	case models.RoleStudent:
		account.Track = req.Track
		account.Bio = req.Bio
		account.Interests = req.Interests
		account.FavoriteTutors = []string{}
	case models.RoleTutor:
		account.University = req.University
		account.Major = req.Major
		account.Year = req.Year
		account.TeachingSubjects = req.TeachingSubjects
		account.HourlyRate = req.HourlyRate
		account.TutorBio = req.TutorBio
		account.Availability = req.Availability
		account.Approved = false
	}

	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, err
	}
	logger.Info("Account registered", zap.String("accountID", account.ID), zap.String("role", string(account.Role)))

	public := account.Public()
	return &public, nil
}

// FindByCredential returns nil when no account matches the identifier or the
// password does not verify.
func (s *DefaultAccountService) FindByCredential(ctx context.Context, identifier, password, method string) (*models.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if method == "" {
		method = "phone"
		if strings.Contains(identifier, "@") {
			method = "email"
		}
	}

	var account *models.Account
	var err error
	switch method {
	case "email":
		account, err = s.Repo.FindByEmail(ctx, identifier)
	case "phone":
		account, err = s.Repo.FindByPhone(ctx, identifier)
	default:
		return nil, utils.Validation("unsupported login method %q", method)
	}
	if err != nil || account == nil {
		return nil, err
	}

	if account.Password == "" {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, nil
	}

	public := account.Public()
	return &public, nil
}

// Login verifies the credential and issues a signed token.
func (s *DefaultAccountService) Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.FindByCredential(ctx, req.Identifier, req.Password, req.Method)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(account.ID, string(account.Role), s.TokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &AuthResponse{Token: token, Account: *account}, nil
}
