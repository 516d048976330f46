package settingsRepo

import (
	"context"
	"errors"
	"time"

	"thanawyia/models"
	"thanawyia/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsID keys the single settings document.
const settingsID = "platform"

type MongoSettingsRepo struct {
	coll *mongo.Collection
}

func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &MongoSettingsRepo{coll: db.Collection("settings")}
}

func (r *MongoSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings := models.DefaultSettings()
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&settings)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.Persistence("load settings", err)
	}
	return &settings, nil
}

func (r *MongoSettingsRepo) Update(ctx context.Context, settings *models.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsID}, settings, opts); err != nil {
		return utils.Persistence("update settings", err)
	}
	return nil
}
