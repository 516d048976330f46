package transaction

import (
	"context"

	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

func (s *DefaultTransactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	return s.Repo.GetAll(ctx)
}

// ListByAccount returns the account's ledger, newest first.
func (s *DefaultTransactionService) ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return s.Repo.ListByAccount(ctx, accountID)
}

// Create appends a transaction. Status defaults to pending.
func (s *DefaultTransactionService) Create(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if req.Status == "" {
		req.Status = models.TransactionPending
	}

	txn := &models.Transaction{
		ID:          utils.NewID(utils.TransactionPrefix),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
		BookingID:   req.BookingID,
		CreatedAt:   s.Clock().UTC(),
	}
	if err := s.Repo.Create(ctx, txn); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Transaction recorded",
		zap.String("transactionID", txn.ID),
		zap.String("type", string(txn.Type)),
		zap.Float64("amount", txn.Amount))
	return txn, nil
}
