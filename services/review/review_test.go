package review

import (
	"context"
	"testing"
	"time"

	"thanawyia/database/document"
	accountRepo "thanawyia/database/repository/account"
	reviewRepo "thanawyia/database/repository/review"
	"thanawyia/models"
	"thanawyia/utils"
)

const fixture = `{"users":[
	{"id":"student_1","role":"student","name":"Sara","email":"sara@example.com","createdAt":"2024-01-01T10:00:00Z"},
	{"id":"tutor_1","role":"tutor","name":"Omar","email":"omar@example.com","approved":true,"createdAt":"2024-01-02T10:00:00Z"}
]}`

func newTestService(t *testing.T) *DefaultReviewService {
	t.Helper()
	source := document.FixtureFunc(func(context.Context) ([]byte, error) { return []byte(fixture), nil })
	adapter := document.NewAdapter(document.NewMemoryStorage(), document.NewCache(source))
	store := document.NewCollectionRepository(adapter)

	svc := NewDefaultReviewService(reviewRepo.NewDocumentReviewRepo(store), accountRepo.NewDocumentAccountRepo(store), nil)
	svc.Clock = func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateRecomputesTutorRating(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var agg *models.RatingAggregate
	for _, rating := range []int{5, 4, 3} {
		var err error
		_, agg, err = svc.Create(ctx, models.ReviewRequest{TutorID: "tutor_1", StudentID: "student_1", Rating: rating})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if agg.Rating != 4.0 || agg.ReviewsCount != 3 {
		t.Errorf("expected 4.0 over 3 reviews, got %v over %d", agg.Rating, agg.ReviewsCount)
	}

	tutor, err := svc.Accounts.GetByID(ctx, "tutor_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tutor.Rating != 4.0 || tutor.ReviewsCount != 3 {
		t.Errorf("expected stored aggregate 4.0/3, got %v/%d", tutor.Rating, tutor.ReviewsCount)
	}

	reviews, err := svc.ListByTutor(ctx, "tutor_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 3 {
		t.Errorf("expected 3 reviews, got %d", len(reviews))
	}
}

func TestCreateRejections(t *testing.T) {
	tests := []struct {
		name string
		req  models.ReviewRequest
		kind utils.ErrorKind
	}{
		{"rating too high", models.ReviewRequest{TutorID: "tutor_1", StudentID: "student_1", Rating: 6}, utils.KindValidation},
		{"rating zero", models.ReviewRequest{TutorID: "tutor_1", StudentID: "student_1", Rating: 0}, utils.KindValidation},
		{"not a tutor", models.ReviewRequest{TutorID: "student_1", StudentID: "student_1", Rating: 4}, utils.KindValidation},
		{"unknown tutor", models.ReviewRequest{TutorID: "tutor_9", StudentID: "student_1", Rating: 4}, utils.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			if _, _, err := svc.Create(context.Background(), tt.req); !utils.IsKind(err, tt.kind) {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}
