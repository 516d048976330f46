package account

import (
	"context"
	"time"

	accountRepo "thanawyia/database/repository/account"
	"thanawyia/models"
	"thanawyia/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login when no account matches.
var ErrInvalidCredentials = utils.Validation("invalid email, phone or password")

type AccountService interface {
	// Registration and authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	FindByCredential(ctx context.Context, identifier, password, method string) (*models.Account, error)
	Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)

	// Account management
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	ListTutors(ctx context.Context, approved *bool) ([]models.Account, error)
	ListStudents(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error)

	// Favorites
	ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error)
	GetFavorites(ctx context.Context, studentID string) ([]models.Account, error)

	// Admin
	SetApproval(ctx context.Context, tutorID string, approved bool) (*models.Account, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo       accountRepo.AccountRepository
	BcryptCost int
	TokenTTL   time.Duration
	Clock      func() time.Time
}

func NewDefaultAccountService(repo accountRepo.AccountRepository, bcryptCost int, tokenTTL time.Duration) *DefaultAccountService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &DefaultAccountService{Repo: repo, BcryptCost: bcryptCost, TokenTTL: tokenTTL, Clock: time.Now}
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"user"`
}
