package middleware

import (
	"context"

	"thanawyia/models"
)

// accountRepoStub satisfies the rest of AccountRepository for tests.
type accountRepoStub struct{}

func (accountRepoStub) GetAll(ctx context.Context) ([]models.Account, error) { return nil, nil }
func (accountRepoStub) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return nil, nil
}
func (accountRepoStub) FindByPhone(ctx context.Context, phone string) (*models.Account, error) {
	return nil, nil
}
func (accountRepoStub) ListByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	return nil, nil
}
func (accountRepoStub) Create(ctx context.Context, account *models.Account) error { return nil }
func (accountRepoStub) Patch(ctx context.Context, id string, fields map[string]any) (*models.Account, error) {
	return nil, nil
}
func (accountRepoStub) ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error) {
	return nil, nil
}
