package notification

import (
	"context"

	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

func (s *DefaultNotificationService) ListByAccount(ctx context.Context, accountID string) ([]models.Notification, error) {
	return s.Repo.ListByAccount(ctx, accountID)
}

func (s *DefaultNotificationService) Create(ctx context.Context, req models.NotificationRequest) (*models.Notification, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	n := &models.Notification{
		ID:        utils.NewID(utils.NotificationPrefix),
		UserID:    req.UserID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		CreatedAt: s.Clock().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *DefaultNotificationService) MarkAsRead(ctx context.Context, id, accountID string) (*models.Notification, error) {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.UserID != accountID {
		return nil, utils.Forbidden("notification %s belongs to another account", id)
	}
	return s.Repo.MarkAsRead(ctx, id)
}

func (s *DefaultNotificationService) MarkAllAsRead(ctx context.Context, accountID string) (int, error) {
	return s.Repo.MarkAllAsRead(ctx, accountID)
}

func (s *DefaultNotificationService) Notify(ctx context.Context, accountID, kind, title, message string) {
	_, err := s.Create(ctx, models.NotificationRequest{
		UserID:  accountID,
		Type:    kind,
		Title:   title,
		Message: message,
	})
	if err != nil {
		utils.GetLogger().Warn("Failed to deliver notification",
			zap.String("accountID", accountID),
			zap.String("type", kind),
			zap.Error(err))
	}
}
