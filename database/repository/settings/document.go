package settingsRepo

import (
	"context"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

type DocumentSettingsRepo struct {
	store *document.CollectionRepository
}

func NewDocumentSettingsRepo(store *document.CollectionRepository) SettingsRepository {
	return &DocumentSettingsRepo{store: store}
}

func (r *DocumentSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := r.store.GetObject(ctx, document.Settings, &settings); err != nil {
		return nil, utils.Persistence("load settings", err)
	}
	return &settings, nil
}

func (r *DocumentSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		return document.StoreObject(tx, document.Settings, *settings)
	})
	return utils.Persistence("update settings", err)
}
