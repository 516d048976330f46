package review

import (
	"context"
	"time"

	accountRepo "thanawyia/database/repository/account"
	reviewRepo "thanawyia/database/repository/review"
	"thanawyia/models"
	"thanawyia/services/notification"
)

type ReviewService interface {
	ListByTutor(ctx context.Context, tutorID string) ([]models.Review, error)
	// Create stores the review and returns the tutor's new rating aggregate.
	Create(ctx context.Context, req models.ReviewRequest) (*models.Review, *models.RatingAggregate, error)
}

type DefaultReviewService struct {
	Reviews         reviewRepo.ReviewRepository
	Accounts        accountRepo.AccountRepository
	NotificationSvc notification.NotificationService
	Clock           func() time.Time
}

func NewDefaultReviewService(
	reviews reviewRepo.ReviewRepository,
	accounts accountRepo.AccountRepository,
	notificationSvc notification.NotificationService,
) *DefaultReviewService {
	return &DefaultReviewService{Reviews: reviews, Accounts: accounts, NotificationSvc: notificationSvc, Clock: time.Now}
}
