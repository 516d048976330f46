package messageRepo

import (
	"context"
	"sort"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

// DocumentMessageRepo implements MessageRepository on the messages collection.
type DocumentMessageRepo struct {
	store *document.CollectionRepository
}

func NewDocumentMessageRepo(store *document.CollectionRepository) MessageRepository {
	return &DocumentMessageRepo{store: store}
}

func (r *DocumentMessageRepo) Conversation(ctx context.Context, a, b string) ([]models.Message, error) {
	return r.filter(ctx, func(m models.Message) bool {
		return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
	})
}

func (r *DocumentMessageRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Message, error) {
	return r.filter(ctx, func(m models.Message) bool {
		return m.SenderID == accountID || m.ReceiverID == accountID
	})
}

func (r *DocumentMessageRepo) Create(ctx context.Context, message *models.Message) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		return document.Append(tx, document.Messages, *message)
	})
	return utils.Persistence("create message", err)
}

func (r *DocumentMessageRepo) GetByID(ctx context.Context, id string) (*models.Message, error) {
	messages, err := document.List[models.Message](ctx, r.store, document.Messages)
	if err != nil {
		return nil, utils.Persistence("load messages", err)
	}
	for i := range messages {
		if messages[i].ID == id {
			return &messages[i], nil
		}
	}
	return nil, utils.NotFound("message %s not found", id)
}

func (r *DocumentMessageRepo) MarkAsRead(ctx context.Context, id string) (*models.Message, error) {
	var updated models.Message
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		n, err := document.Update(tx, document.Messages, func(m *models.Message) (bool, error) {
			if m.ID != id {
				return false, nil
			}
			m.Read = true
			updated = *m
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("message %s not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, utils.Persistence("mark message as read", err)
	}
	return &updated, nil
}

func (r *DocumentMessageRepo) filter(ctx context.Context, keep func(models.Message) bool) ([]models.Message, error) {
	messages, err := document.List[models.Message](ctx, r.store, document.Messages)
	if err != nil {
		return nil, utils.Persistence("load messages", err)
	}
	out := []models.Message{}
	for _, m := range messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
