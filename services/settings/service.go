package settings

import (
	"context"

	settingsRepo "thanawyia/database/repository/settings"
	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings models.Settings) (*models.Settings, error)
}

type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

func NewDefaultSettingsService(repo settingsRepo.SettingsRepository) *DefaultSettingsService {
	return &DefaultSettingsService{Repo: repo}
}

func (s *DefaultSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.Repo.Get(ctx)
}

// Update replaces the platform settings as a whole.
func (s *DefaultSettingsService) Update(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	if err := utils.ValidateStruct(settings); err != nil {
		return nil, err
	}
	if settings.SupportPhone != "" && !utils.IsValidPhone(settings.SupportPhone) {
		return nil, utils.Validation("invalid support phone number")
	}
	if err := s.Repo.Update(ctx, &settings); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Platform settings updated", zap.Float64("platformFee", settings.PlatformFee))
	return &settings, nil
}
