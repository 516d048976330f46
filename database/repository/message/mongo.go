package messageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thanawyia/models"
	"thanawyia/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

func NewMongoMessageRepo(db *mongo.Database) MessageRepository {
	repo := &MongoMessageRepo{coll: db.Collection("messages")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create message indexes", zap.Error(err))
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoMessageRepo) Conversation(ctx context.Context, a, b string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"senderId": a, "receiverId": b},
		bson.M{"senderId": b, "receiverId": a},
	}})
}

func (r *MongoMessageRepo) ListByAccount(ctx context.Context, accountID string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"senderId": accountID},
		bson.M{"receiverId": accountID},
	}})
}

func (r *MongoMessageRepo) Create(ctx context.Context, message *models.Message) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return utils.Persistence("create message", err)
	}
	return nil
}

func (r *MongoMessageRepo) GetByID(ctx context.Context, id string) (*models.Message, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var message models.Message
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&message); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("message %s not found", id)
		}
		return nil, utils.Persistence("fetch message", err)
	}
	return &message, nil
}

func (r *MongoMessageRepo) MarkAsRead(ctx context.Context, id string) (*models.Message, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var message models.Message
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}}, opts).Decode(&message)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("message %s not found", id)
		}
		return nil, utils.Persistence("mark message as read", err)
	}
	return &message, nil
}

// find sorts by timestamp then _id, which follows insertion order for ties.
func (r *MongoMessageRepo) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.Persistence("list messages", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, utils.Persistence("decode messages", err)
	}
	return messages, nil
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "senderId", Value: 1}, {Key: "receiverId", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "read", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
