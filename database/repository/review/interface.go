package reviewRepo

import (
	"context"

	"thanawyia/models"

	"github.com/shopspring/decimal"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error)
	// CreateWithAggregate inserts the review and rewrites the tutor's rating
	// and reviewsCount in the same atomic operation.
	CreateWithAggregate(ctx context.Context, review *models.Review) (*models.RatingAggregate, error)
}

// ComputeAggregate returns the mean rating rounded to one decimal and the count.
func ComputeAggregate(tutorID string, ratings []int) models.RatingAggregate {
	agg := models.RatingAggregate{TutorID: tutorID, ReviewsCount: len(ratings)}
	if len(ratings) == 0 {
		return agg
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r)))
	}
	agg.Rating = sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(1).InexactFloat64()
	return agg
}
