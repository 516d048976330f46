package report

import (
	"context"
	"testing"

	"thanawyia/database/document"
	"thanawyia/database/repository"
	"thanawyia/models"
)

const fixture = `{
	"users":[
		{"id":"student_1","role":"student","email":"a@example.com"},
		{"id":"student_2","role":"student","email":"b@example.com"},
		{"id":"tutor_1","role":"tutor","email":"c@example.com","approved":true},
		{"id":"tutor_2","role":"tutor","email":"d@example.com"},
		{"id":"admin_1","role":"admin","email":"e@example.com"}
	],
	"bookings":[
		{"id":"b_1","status":"completed"},
		{"id":"b_2","status":"pending"},
		{"id":"b_3","status":"cancelled"}
	],
	"transactions":[
		{"id":"t_1","userId":"student_1","amount":-300,"type":"payment","status":"completed"},
		{"id":"t_2","userId":"student_2","amount":-150.5,"type":"payment","status":"completed"},
		{"id":"t_3","userId":"student_2","amount":-99,"type":"payment","status":"pending"},
		{"id":"t_4","userId":"tutor_1","amount":255,"type":"earning","status":"completed"}
	],
	"settings":{"platformFee":0.2}
}`

func TestPlatformStats(t *testing.T) {
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(fixture), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	repos := repository.NewDocumentRepositories(document.NewCollectionRepository(adapter))

	svc := &DefaultReportService{
		Accounts:     repos.Accounts,
		Bookings:     repos.Bookings,
		Transactions: repos.Transactions,
		Settings:     repos.Settings,
	}
	stats, err := svc.PlatformStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalStudents != 2 || stats.TotalTutors != 2 || stats.ActiveTutors != 1 || stats.PendingTutors != 1 {
		t.Errorf("unexpected account counts %+v", stats)
	}
	if stats.TotalSessions != 3 || stats.CompletedSessions != 1 || stats.PendingSessions != 1 {
		t.Errorf("unexpected session counts %+v", stats)
	}
	if stats.TotalRevenue != 450.5 || stats.PlatformFee != 90.1 {
		t.Errorf("expected revenue 450.5 and fee 90.1, got %v and %v", stats.TotalRevenue, stats.PlatformFee)
	}

	byStatus, err := svc.BookingsByStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[models.BookingStatus]int{
		models.BookingPending:   1,
		models.BookingConfirmed: 0,
		models.BookingCompleted: 1,
		models.BookingCancelled: 1,
	}
	for status, n := range want {
		if byStatus[status] != n {
			t.Errorf("expected %d %s bookings, got %d", n, status, byStatus[status])
		}
	}
	if stats.BookingsByStatus[models.BookingCancelled] != 1 {
		t.Errorf("expected stats to carry status counts, got %v", stats.BookingsByStatus)
	}
}
