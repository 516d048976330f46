package notificationRepo

import (
	"context"
	"testing"

	"thanawyia/database/document"
	"thanawyia/utils"
)

const fixture = `{"notifications":[
	{"id":"n_1","userId":"student_1","message":"old","read":false,"createdAt":"2024-01-01T10:00:00Z"},
	{"id":"n_2","userId":"student_1","message":"new","read":false,"createdAt":"2024-01-03T10:00:00Z"},
	{"id":"n_3","userId":"tutor_1","message":"other","read":false,"createdAt":"2024-01-02T10:00:00Z"}
]}`

func newTestRepo(t *testing.T) NotificationRepository {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(fixture), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	return NewDocumentNotificationRepo(document.NewCollectionRepository(adapter))
}

func TestListByAccountNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	list, err := repo.ListByAccount(context.Background(), "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "n_2" || list[1].ID != "n_1" {
		t.Errorf("unexpected order %+v", list)
	}
}

func TestMarkAllAsReadOnlyTouchesAccount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	changed, err := repo.MarkAllAsRead(ctx, "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 2 {
		t.Errorf("expected 2 changed, got %d", changed)
	}

	others, _ := repo.ListByAccount(ctx, "tutor_1")
	if others[0].Read {
		t.Error("expected other account's notification to stay unread")
	}
}

func TestMarkAsReadUnknown(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.MarkAsRead(context.Background(), "n_404"); !utils.IsKind(err, utils.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
