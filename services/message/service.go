package message

import (
	"context"
	"sort"
	"strings"

	"thanawyia/models"
	"thanawyia/utils"
)

func (s *DefaultMessageService) Conversation(ctx context.Context, a, b string) ([]models.Message, error) {
	if a == "" || b == "" {
		return nil, utils.Validation("both participants are required")
	}
	return s.Repo.Conversation(ctx, a, b)
}

// Send stores a new unread message.
func (s *DefaultMessageService) Send(ctx context.Context, req models.MessageRequest) (*models.Message, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         utils.NewID(utils.MessagePrefix),
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
		Timestamp:  s.Clock().UTC(),
		Read:       false,
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *DefaultMessageService) MarkAsRead(ctx context.Context, id, accountID string) (*models.Message, error) {
	msg, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.ReceiverID != accountID {
		return nil, utils.Forbidden("only the receiver can mark message %s as read", id)
	}
	return s.Repo.MarkAsRead(ctx, id)
}

func (s *DefaultMessageService) Inbox(ctx context.Context, accountID string) ([]models.InboxEntry, error) {
	messages, err := s.Repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	byPartner := map[string]*models.InboxEntry{}
	for _, m := range messages {
		partner := m.ReceiverID
		if m.SenderID != accountID {
			partner = m.SenderID
		}
		entry, ok := byPartner[partner]
		if !ok {
			entry = &models.InboxEntry{PartnerID: partner}
			byPartner[partner] = entry
		}
		// messages are oldest first, so the last one seen is the latest.
		entry.LastMessage = m
		if m.ReceiverID == accountID && !m.Read {
			entry.Unread++
		}
	}

	inbox := make([]models.InboxEntry, 0, len(byPartner))
	for _, entry := range byPartner {
		inbox = append(inbox, *entry)
	}
	sort.Slice(inbox, func(i, j int) bool {
		ti, tj := inbox[i].LastMessage.Timestamp, inbox[j].LastMessage.Timestamp
		if ti.Equal(tj) {
			return inbox[i].PartnerID < inbox[j].PartnerID
		}
		return ti.After(tj)
	})
	return inbox, nil
}
