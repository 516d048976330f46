package messageRepo

import (
	"context"
	"testing"
	"time"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

func newTestRepo(t *testing.T, fixture string) MessageRepository {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(fixture), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	return NewDocumentMessageRepo(document.NewCollectionRepository(adapter))
}

func TestConversationIsSymmetricAndOrdered(t *testing.T) {
	repo := newTestRepo(t, `{"messages":[
		{"id":"m_3","senderId":"b","receiverId":"a","text":"third","timestamp":"2024-01-01T10:02:00Z"},
		{"id":"m_1","senderId":"a","receiverId":"b","text":"first","timestamp":"2024-01-01T10:00:00Z"},
		{"id":"m_x","senderId":"a","receiverId":"c","text":"other","timestamp":"2024-01-01T10:01:00Z"},
		{"id":"m_2a","senderId":"b","receiverId":"a","text":"tie-1","timestamp":"2024-01-01T10:01:00Z"},
		{"id":"m_2b","senderId":"a","receiverId":"b","text":"tie-2","timestamp":"2024-01-01T10:01:00Z"}
	]}`)
	ctx := context.Background()

	ab, err := repo.Conversation(ctx, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := repo.Conversation(ctx, "b", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"m_1", "m_2a", "m_2b", "m_3"}
	for _, got := range [][]models.Message{ab, ba} {
		if len(got) != len(want) {
			t.Fatalf("expected %d messages, got %d", len(want), len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
			}
		}
	}
}

func TestMarkAsRead(t *testing.T) {
	repo := newTestRepo(t, `{"messages":[]}`)
	ctx := context.Background()

	msg := &models.Message{ID: "m_1", SenderID: "a", ReceiverID: "b", Text: "hi", Timestamp: time.Now().UTC()}
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := repo.MarkAsRead(ctx, "m_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Read {
		t.Error("expected message to be read")
	}

	if _, err := repo.MarkAsRead(ctx, "missing"); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
