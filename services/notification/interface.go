package notification

import (
	"context"
	"time"

	notificationRepo "thanawyia/database/repository/notification"
	"thanawyia/models"
)

// NotificationService stores in-app notifications for accounts.
type NotificationService interface {
	ListByAccount(ctx context.Context, accountID string) ([]models.Notification, error)
	Create(ctx context.Context, req models.NotificationRequest) (*models.Notification, error)
	// MarkAsRead flags a notification read on behalf of accountID, who must own it.
	MarkAsRead(ctx context.Context, id, accountID string) (*models.Notification, error)
	MarkAllAsRead(ctx context.Context, accountID string) (int, error)
	// Notify creates a notification and only logs a failure, for side effects
	// of other operations that must not fail because of it.
	Notify(ctx context.Context, accountID, kind, title, message string)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Clock func() time.Time
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo, Clock: time.Now}
}
