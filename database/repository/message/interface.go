package messageRepo

import (
	"context"

	"thanawyia/models"
)

// MessageRepository defines methods for message data access.
type MessageRepository interface {
	// Conversation returns messages exchanged between a and b in either
	// direction, oldest first. Equal timestamps keep their stored order.
	Conversation(ctx context.Context, a, b string) ([]models.Message, error)
	// ListByAccount returns every message sent or received by accountID, oldest first.
	ListByAccount(ctx context.Context, accountID string) ([]models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id string) (*models.Message, error)
	// MarkAsRead returns NotFound for an unknown id.
	MarkAsRead(ctx context.Context, id string) (*models.Message, error)
}
