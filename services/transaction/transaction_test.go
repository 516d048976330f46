package transaction

import (
	"context"
	"testing"
	"time"

	"thanawyia/database/document"
	transactionRepo "thanawyia/database/repository/transaction"
	"thanawyia/models"
	"thanawyia/utils"
)

func newTestService(t *testing.T) *DefaultTransactionService {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(`{}`), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	svc := NewDefaultTransactionService(transactionRepo.NewDocumentTransactionRepo(document.NewCollectionRepository(adapter)))

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.Clock = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}
	return svc
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, models.TransactionRequest{UserID: "student_1", Amount: 500, Type: models.TransactionDeposit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != models.TransactionPending {
		t.Errorf("expected default pending status, got %s", first.Status)
	}
	second, err := svc.Create(ctx, models.TransactionRequest{UserID: "student_1", Amount: -300, Type: models.TransactionPayment, Status: models.TransactionCompleted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Create(ctx, models.TransactionRequest{UserID: "tutor_1", Amount: 255, Type: models.TransactionEarning}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := svc.ListByAccount(ctx, "student_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("unexpected order %+v", list)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []models.TransactionRequest{
		{UserID: "student_1", Amount: 0, Type: models.TransactionDeposit},
		{UserID: "student_1", Amount: 10, Type: "gift"},
		{UserID: "student_1", Amount: 10, Type: models.TransactionRefund, Status: "done"},
		{Amount: 10, Type: models.TransactionRefund},
	}
	for _, req := range tests {
		if _, err := svc.Create(context.Background(), req); !utils.IsKind(err, utils.KindValidation) {
			t.Errorf("request %+v: expected validation failure, got %v", req, err)
		}
	}
}
