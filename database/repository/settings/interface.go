package settingsRepo

import (
	"context"

	"thanawyia/models"
)

// SettingsRepository reads and writes the single platform settings record.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when none are stored.
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}
