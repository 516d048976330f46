package transactionRepo

import (
	"context"
	"sort"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

type DocumentTransactionRepo struct {
	store *document.CollectionRepository
}

func NewDocumentTransactionRepo(store *document.CollectionRepository) TransactionRepository {
	return &DocumentTransactionRepo{store: store}
}

func (r *DocumentTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	txns, err := document.List[models.Transaction](ctx, r.store, document.Transactions)
	if err != nil {
		return nil, utils.Persistence("load transactions", err)
	}
	return txns, nil
}

func (r *DocumentTransactionRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	txns, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Transaction{}
	for _, t := range txns {
		if t.UserID == accountID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *DocumentTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		return document.Append(tx, document.Transactions, *txn)
	})
	return utils.Persistence("create transaction", err)
}
