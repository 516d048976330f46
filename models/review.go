package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a student's rating of a tutor.
type Review struct {
	ID        string    `json:"id" bson:"id"`
	TutorID   string    `json:"tutorId" bson:"tutorId"`
	StudentID string    `json:"studentId" bson:"studentId"`
	BookingID string    `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ReviewRequest is the payload for creating a review.
type ReviewRequest struct {
	TutorID   string `json:"tutorId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	BookingID string `json:"bookingId,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty" validate:"max=1000"`
}

// RatingAggregate is the tutor summary recomputed on every review insert.
type RatingAggregate struct {
	TutorID      string  `json:"tutorId"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviewsCount"`
}
