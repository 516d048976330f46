package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo(db *mongo.Database) AccountRepository {
	repo := &MongoAccountRepo{coll: db.Collection("users")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create account indexes", zap.Error(err))
	}
	return repo
}

// newContext bounds a repository call.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.NotFound("account %s not found", id)
	}
	return account, nil
}

func (r *MongoAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAccountRepo) FindByPhone(ctx context.Context, phone string) (*models.Account, error) {
	if phone == "" {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *MongoAccountRepo) ListByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	return r.find(ctx, bson.M{"role": role})
}

// Create inserts a new account document. The unique indexes on email and
// phone turn a concurrent duplicate into a DuplicateIdentifier error.
func (r *MongoAccountRepo) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.Duplicate("email or phone is already registered")
		}
		return utils.Persistence("create account", err)
	}
	return nil
}

func (r *MongoAccountRepo) Patch(ctx context.Context, id string, fields map[string]any) (*models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var account models.Account
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("account %s not found", id)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.Duplicate("email or phone is already registered")
		}
		return nil, utils.Persistence(fmt.Sprintf("update account %s", id), err)
	}
	return &account, nil
}

// ToggleFavorite flips membership with a pipeline update so the check and
// the write happen in one round trip.
func (r *MongoAccountRepo) ToggleFavorite(ctx context.Context, studentID, tutorID string) ([]string, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	favorites := bson.D{{Key: "$ifNull", Value: bson.A{"$favoritesTutors", bson.A{}}}}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "favoritesTutors", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{tutorID, favorites}}}},
				{Key: "then", Value: bson.D{{Key: "$setDifference", Value: bson.A{favorites, bson.A{tutorID}}}}},
				{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{favorites, bson.A{tutorID}}}}},
			}}}},
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var account models.Account
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": studentID}, pipeline, opts).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFound("account %s not found", studentID)
		}
		return nil, utils.Persistence("toggle favorite", err)
	}
	if account.FavoriteTutors == nil {
		return []string{}, nil
	}
	return account.FavoriteTutors, nil
}

func (r *MongoAccountRepo) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var account models.Account
	if err := r.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, utils.Persistence("fetch account", err)
	}
	return &account, nil
}

func (r *MongoAccountRepo) find(ctx context.Context, filter bson.M) ([]models.Account, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.Persistence("list accounts", err)
	}
	defer cursor.Close(ctx)

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, utils.Persistence("decode accounts", err)
	}
	return accounts, nil
}
