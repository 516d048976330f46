package accountRepo

import (
	"context"

	"thanawyia/models"
)

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetAll returns every account in stored order.
	GetAll(ctx context.Context) ([]models.Account, error)
	// GetByID returns a NotFound error when the account does not exist.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// FindByEmail returns nil, nil when no account uses the email.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindByPhone returns nil, nil when no account uses the phone.
	FindByPhone(ctx context.Context, phone string) (*models.Account, error)
	// ListByRole returns the accounts holding role.
	ListByRole(ctx context.Context, role models.Role) ([]models.Account, error)
	// Create inserts a new account, rejecting a taken email or phone.
	Create(ctx context.Context, account *models.Account) error
	// Patch overlays fields on the account and returns the result.
	Patch(ctx context.Context, id string, fields map[string]any) (*models.Account, error)
	// ToggleFavorite adds or removes tutorID from the student's favorites.
	ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error)
}
