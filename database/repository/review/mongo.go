package reviewRepo

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

// MongoReviewRepo keeps reviews in their own collection and the aggregate on the tutor's user document.
type MongoReviewRepo struct {
	reviewColl *mongo.Collection
	userColl   *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	repo := &MongoReviewRepo{
		reviewColl: db.Collection("reviews"),
		userColl:   db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create review indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoReviewRepo) ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.listByTutor(ctx, tutorID)
}

// CreateWithAggregate runs the insert and the recompute in one multi-document
// transaction, which requires a replica set deployment.
func (r *MongoReviewRepo) CreateWithAggregate(ctx context.Context, review *models.Review) (*models.RatingAggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sess, err := r.reviewColl.Database().Client().StartSession()
	if err != nil {
		return nil, utils.Persistence("start mongo session", err)
	}
	defer sess.EndSession(ctx)

	var agg models.RatingAggregate
	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.reviewColl.InsertOne(sc, review); err != nil {
			return fmt.Errorf("insert review failed: %w", err)
		}

		reviews, err := r.listByTutor(sc, review.TutorID)
		if err != nil {
			return err
		}
		ratings := make([]int, 0, len(reviews))
		for _, rv := range reviews {
			ratings = append(ratings, rv.Rating)
		}
		agg = ComputeAggregate(review.TutorID, ratings)

		res, err := r.userColl.UpdateOne(sc,
			bson.M{"id": review.TutorID, "role": models.RoleTutor},
			bson.M{"$set": bson.M{"rating": agg.Rating, "reviewsCount": agg.ReviewsCount}},
		)
		if err != nil {
			return fmt.Errorf("update tutor rating failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return utils.NotFound("tutor %s not found", review.TutorID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, utils.Persistence("create review", err)
	}
	return &agg, nil
}

func (r *MongoReviewRepo) listByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.reviewColl.Find(ctx, bson.M{"tutorId": tutorID}, opts)
	if err != nil {
		return nil, utils.Persistence("list reviews", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, utils.Persistence("decode reviews", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutorId", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := r.reviewColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
