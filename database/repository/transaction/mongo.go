package transactionRepo

import (
	"context"
	"fmt"
	"time"

	"thanawyia/models"
	"thanawyia/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MongoTransactionRepo struct {
	coll *mongo.Collection
}

func NewMongoTransactionRepo(db *mongo.Database) TransactionRepository {
	repo := &MongoTransactionRepo{coll: db.Collection("transactions")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create transaction indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{}, 1)
}

func (r *MongoTransactionRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return r.find(ctx, bson.M{"userId": accountID}, -1)
}

func (r *MongoTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, txn); err != nil {
		return utils.Persistence("create transaction", err)
	}
	return nil
}

func (r *MongoTransactionRepo) find(ctx context.Context, filter bson.M, order int) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: order}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.Persistence("list transactions", err)
	}
	defer cursor.Close(ctx)

	txns := []models.Transaction{}
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, utils.Persistence("decode transactions", err)
	}
	return txns, nil
}

func (r *MongoTransactionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
