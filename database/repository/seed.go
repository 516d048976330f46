package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thanawyia/database/document"
	settingsRepo "thanawyia/database/repository/settings"
	"thanawyia/models"
	"thanawyia/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HashSeedPasswords replaces plaintext fixture passwords with bcrypt hashes
// so seeded accounts can sign in like registered ones.
func HashSeedPasswords(cost int) document.SeedTransform {
	return func(doc *document.Document) error {
		_, err := document.Update(document.NewTx(doc), document.Users, func(a *models.Account) (bool, error) {
			if a.Password == "" || isBcryptHash(a.Password) {
				return false, nil
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
			if err != nil {
				return false, fmt.Errorf("failed to hash seed password for %s: %w", a.ID, err)
			}
			a.Password = string(hash)
			return true, nil
		})
		return err
	}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// SeedMongo copies every fixture collection into MongoDB collections that are still empty.
func SeedMongo(ctx context.Context, db *mongo.Database, doc *document.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx := document.NewTx(doc)
	if err := seedCollection[models.Account](ctx, db, tx, document.Users); err != nil {
		return err
	}
	if err := seedCollection[models.Booking](ctx, db, tx, document.Bookings); err != nil {
		return err
	}
	if err := seedCollection[models.Message](ctx, db, tx, document.Messages); err != nil {
		return err
	}
	if err := seedCollection[models.Transaction](ctx, db, tx, document.Transactions); err != nil {
		return err
	}
	if err := seedCollection[models.Notification](ctx, db, tx, document.Notifications); err != nil {
		return err
	}
	if err := seedCollection[models.Review](ctx, db, tx, document.Reviews); err != nil {
		return err
	}

	settings, ok, err := document.LoadObject[models.Settings](tx, document.Settings)
	if err != nil || !ok {
		return err
	}
	coll := db.Collection(document.Settings)
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count settings: %w", err)
	}
	if n == 0 {
		if err := settingsRepo.NewMongoSettingsRepo(db).Update(ctx, &settings); err != nil {
			return err
		}
	}
	return nil
}

func seedCollection[T any](ctx context.Context, db *mongo.Database, tx *document.Tx, name string) error {
	coll := db.Collection(name)
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if n > 0 {
		return nil
	}

	items, err := document.Load[T](tx, name)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}
	utils.GetLogger().Info("Seeded collection from fixture", zap.String("collection", name), zap.Int("count", len(items)))
	return nil
}
