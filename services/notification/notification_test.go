package notification

import (
	"context"
	"testing"
	"time"

	"thanawyia/database/document"
	notificationRepo "thanawyia/database/repository/notification"
	"thanawyia/models"
	"thanawyia/utils"
)

func newTestService(t *testing.T) *DefaultNotificationService {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(`{"notifications":[]}`), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	svc := NewDefaultNotificationService(notificationRepo.NewDocumentNotificationRepo(document.NewCollectionRepository(adapter)))
	svc.Clock = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return svc
}

func TestMarkAsReadOnlyByOwner(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, models.NotificationRequest{UserID: "student_1", Type: "booking", Message: "Booking confirmed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.MarkAsRead(ctx, n.ID, "student_2"); !utils.IsKind(err, utils.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	items, err := svc.ListByAccount(ctx, "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Read {
		t.Fatalf("expected one unread notification, got %+v", items)
	}

	updated, err := svc.MarkAsRead(ctx, n.ID, "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Read {
		t.Error("expected notification to be read")
	}

	if _, err := svc.MarkAsRead(ctx, "n_missing", "student_1"); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMarkAllAsReadCountsOwnUnread(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, userID := range []string{"student_1", "student_1", "tutor_1"} {
		if _, err := svc.Create(ctx, models.NotificationRequest{UserID: userID, Message: "hello"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	changed, err := svc.MarkAllAsRead(ctx, "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 2 {
		t.Errorf("expected 2 updated, got %d", changed)
	}
	if changed, _ := svc.MarkAllAsRead(ctx, "student_1"); changed != 0 {
		t.Errorf("expected nothing left to update, got %d", changed)
	}

	items, _ := svc.ListByAccount(ctx, "tutor_1")
	if len(items) != 1 || items[0].Read {
		t.Errorf("expected other account untouched, got %+v", items)
	}
}
