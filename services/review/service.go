package review

import (
	"context"
	"fmt"
	"strings"

	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

func (s *DefaultReviewService) ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error) {
	return s.Reviews.ListByTutor(ctx, tutorID)
}

func (s *DefaultReviewService) Create(ctx context.Context, req models.ReviewRequest) (*models.Review, *models.RatingAggregate, error) {
	req.Comment = strings.TrimSpace(req.Comment)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, err
	}

	tutor, err := s.Accounts.GetByID(ctx, req.TutorID)
	if err != nil {
		return nil, nil, err
	}
	if !tutor.IsTutor() {
		return nil, nil, utils.Validation("account %s is not a tutor", req.TutorID)
	}

	review := &models.Review{
		ID:        utils.NewID(utils.ReviewPrefix),
		TutorID:   req.TutorID,
		StudentID: req.StudentID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.Clock().UTC(),
	}
	agg, err := s.Reviews.CreateWithAggregate(ctx, review)
	if err != nil {
		return nil, nil, err
	}
	utils.GetLogger().Info("Review created",
		zap.String("tutorID", review.TutorID),
		zap.Float64("rating", agg.Rating),
		zap.Int("reviewsCount", agg.ReviewsCount))

	if s.NotificationSvc != nil {
		s.NotificationSvc.Notify(ctx, review.TutorID, "review", "New review",
			fmt.Sprintf("You received a %d-star review", review.Rating))
	}
	return review, agg, nil
}
