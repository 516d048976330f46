package message

import (
	"context"
	"time"

	messageRepo "thanawyia/database/repository/message"
	"thanawyia/models"
)

type MessageService interface {
	Conversation(ctx context.Context, a, b string) ([]models.Message, error)
	Send(ctx context.Context, req models.MessageRequest) (*models.Message, error)
	// MarkAsRead flags a message read on behalf of accountID, who must be its receiver.
	MarkAsRead(ctx context.Context, id, accountID string) (*models.Message, error)
	// Inbox returns one entry per conversation partner, most recent first.
	Inbox(ctx context.Context, accountID string) ([]models.InboxEntry, error)
}

type DefaultMessageService struct {
	Repo  messageRepo.MessageRepository
	Clock func() time.Time
}

func NewDefaultMessageService(repo messageRepo.MessageRepository) *DefaultMessageService {
	return &DefaultMessageService{Repo: repo, Clock: time.Now}
}
