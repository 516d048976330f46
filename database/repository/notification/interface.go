package notificationRepo

import (
	"context"

	"thanawyia/models"
)

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// ListByAccount returns the account's notifications, newest first.
	ListByAccount(ctx context.Context, accountID string) ([]models.Notification, error)
	Create(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// MarkAsRead returns NotFound for an unknown id.
	MarkAsRead(ctx context.Context, id string) (*models.Notification, error)
	// MarkAllAsRead marks every unread notification of the account and reports how many changed.
	MarkAllAsRead(ctx context.Context, accountID string) (int, error)
}
