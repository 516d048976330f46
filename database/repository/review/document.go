package reviewRepo

import (
	"context"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

type DocumentReviewRepo struct {
	store *document.CollectionRepository
}

func NewDocumentReviewRepo(store *document.CollectionRepository) ReviewRepository {
	return &DocumentReviewRepo{store: store}
}

func (r *DocumentReviewRepo) ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	all, err := document.List[models.Review](ctx, r.store, document.Reviews)
	if err != nil {
		return nil, utils.Persistence("load reviews", err)
	}
	out := []models.Review{}
	for _, rv := range all {
		if rv.TutorID == tutorID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *DocumentReviewRepo) CreateWithAggregate(ctx context.Context, review *models.Review) (*models.RatingAggregate, error) {
	var agg models.RatingAggregate
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		reviews, err := document.Load[models.Review](tx, document.Reviews)
		if err != nil {
			return err
		}
		ratings := []int{review.Rating}
		for _, rv := range reviews {
			if rv.TutorID == review.TutorID {
				ratings = append(ratings, rv.Rating)
			}
		}
		agg = ComputeAggregate(review.TutorID, ratings)

		n, err := document.Update(tx, document.Users, func(a *models.Account) (bool, error) {
			if a.ID != review.TutorID || !a.IsTutor() {
				return false, nil
			}
			a.Rating = agg.Rating
			a.ReviewsCount = agg.ReviewsCount
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("tutor %s not found", review.TutorID)
		}
		return document.Append(tx, document.Reviews, *review)
	})
	if err != nil {
		return nil, utils.Persistence("create review", err)
	}
	return &agg, nil
}
