package models

import "time"

// BookingStatus is a booking lifecycle state.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a tutoring session requested by a student with a tutor.
type Booking struct {
	ID           string        `json:"id" bson:"id"`
	StudentID    string        `json:"studentId" bson:"studentId"`
	TutorID      string        `json:"tutorId" bson:"tutorId"`
	Subject      string        `json:"subject" bson:"subject"`
	Date         string        `json:"date" bson:"date"`         // YYYY-MM-DD
	Time         string        `json:"time" bson:"time"`         // HH:MM
	Duration     float64       `json:"duration" bson:"duration"` // hours
	Price        float64       `json:"price" bson:"price"`
	Notes        string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Status       BookingStatus `json:"status" bson:"status"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	ConfirmedAt  *time.Time    `json:"confirmedAt,omitempty" bson:"confirmedAt,omitempty"`
	CompletedAt  *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CancelledAt  *time.Time    `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CancelReason string        `json:"cancelReason,omitempty" bson:"cancelReason,omitempty"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	StudentID string  `json:"studentId" validate:"required"`
	TutorID   string  `json:"tutorId" validate:"required"`
	Subject   string  `json:"subject" validate:"required,max=100"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string  `json:"time" validate:"required,datetime=15:04"`
	Duration  float64 `json:"duration" validate:"required,gt=0,lte=8"`
	Price     float64 `json:"price" validate:"gte=0"`
	Notes     string  `json:"notes,omitempty" validate:"max=1000"`
}

// StatusRequest asks for a booking status transition.
type StatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// CancelRequest carries the reason a booking is cancelled.
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
