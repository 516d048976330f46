package transaction

import (
	"context"
	"time"

	transactionRepo "thanawyia/database/repository/transaction"
	"thanawyia/models"
)

type TransactionService interface {
	GetAll(ctx context.Context) ([]models.Transaction, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
	Create(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error)
}

type DefaultTransactionService struct {
	Repo  transactionRepo.TransactionRepository
	Clock func() time.Time
}

func NewDefaultTransactionService(repo transactionRepo.TransactionRepository) *DefaultTransactionService {
	return &DefaultTransactionService{Repo: repo, Clock: time.Now}
}
