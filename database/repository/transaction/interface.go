package transactionRepo

import (
	"context"

	"thanawyia/models"
)

// TransactionRepository defines methods for the append-only transaction ledger.
type TransactionRepository interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	// ListByAccount returns the account's transactions, newest first.
	ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
	Create(ctx context.Context, txn *models.Transaction) error
}
