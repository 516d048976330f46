package bookingRepo

import (
	"context"
	"time"

	"thanawyia/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	// Transition applies t only while the booking is still in status from.
	// It returns NotFound for an unknown id and Conflict if the status moved.
	Transition(ctx context.Context, id string, from models.BookingStatus, t StatusChange) (*models.Booking, error)
}

// StatusChange is a status write and the timestamp stamped with it.
type StatusChange struct {
	To     models.BookingStatus
	At     time.Time
	Reason string // cancellations only
}

// Apply stamps the change onto b.
func (t StatusChange) Apply(b *models.Booking) {
	at := t.At
	b.Status = t.To
	b.UpdatedAt = &at
	switch t.To {
	case models.BookingConfirmed:
		b.ConfirmedAt = &at
	case models.BookingCompleted:
		b.CompletedAt = &at
	case models.BookingCancelled:
		b.CancelledAt = &at
		b.CancelReason = t.Reason
	}
}

// fields is the same change as a flat field set.
func (t StatusChange) fields() map[string]any {
	fields := map[string]any{"status": t.To, "updatedAt": t.At}
	switch t.To {
	case models.BookingConfirmed:
		fields["confirmedAt"] = t.At
	case models.BookingCompleted:
		fields["completedAt"] = t.At
	case models.BookingCancelled:
		fields["cancelledAt"] = t.At
		if t.Reason != "" {
			fields["cancelReason"] = t.Reason
		}
	}
	return fields
}
