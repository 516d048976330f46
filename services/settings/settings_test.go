package settings

import (
	"context"
	"testing"

	"thanawyia/database/document"
	settingsRepo "thanawyia/database/repository/settings"
	"thanawyia/models"
	"thanawyia/utils"
)

func newTestService(t *testing.T) *DefaultSettingsService {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(`{}`), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	return NewDefaultSettingsService(settingsRepo.NewDocumentSettingsRepo(document.NewCollectionRepository(adapter)))
}

func TestUpdateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	next := models.DefaultSettings()
	next.PlatformFee = 0.1
	next.SupportPhone = "01000000000"
	if _, err := svc.Update(ctx, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != next {
		t.Errorf("expected %+v, got %+v", next, got)
	}
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Settings)
	}{
		{"fee above one", func(s *models.Settings) { s.PlatformFee = 1.5 }},
		{"negative withdrawal", func(s *models.Settings) { s.MinWithdrawal = -1 }},
		{"bad support email", func(s *models.Settings) { s.SupportEmail = "nope" }},
		{"bad support phone", func(s *models.Settings) { s.SupportPhone = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			settings := models.DefaultSettings()
			tt.mutate(&settings)
			if _, err := svc.Update(context.Background(), settings); !utils.IsKind(err, utils.KindValidation) {
				t.Fatalf("expected validation failure, got %v", err)
			}
		})
	}
}
