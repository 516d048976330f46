package bookingRepo

import (
	"context"

	"thanawyia/database/document"
	"thanawyia/models"
	"thanawyia/utils"
)

// DocumentBookingRepo implements BookingRepository on the bookings collection.
type DocumentBookingRepo struct {
	store *document.CollectionRepository
}

func NewDocumentBookingRepo(store *document.CollectionRepository) BookingRepository {
	return &DocumentBookingRepo{store: store}
}

func (r *DocumentBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := document.List[models.Booking](ctx, r.store, document.Bookings)
	if err != nil {
		return nil, utils.Persistence("load bookings", err)
	}
	return bookings, nil
}

func (r *DocumentBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, utils.NotFound("booking %s not found", id)
}

func (r *DocumentBookingRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.StudentID == studentID })
}

func (r *DocumentBookingRepo) ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error) {
	return r.filter(ctx, func(b models.Booking) bool { return b.TutorID == tutorID })
}

func (r *DocumentBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		return document.Append(tx, document.Bookings, *booking)
	})
	return utils.Persistence("create booking", err)
}

func (r *DocumentBookingRepo) Transition(ctx context.Context, id string, from models.BookingStatus, t StatusChange) (*models.Booking, error) {
	var updated models.Booking
	err := r.store.Mutate(ctx, func(tx *document.Tx) error {
		n, err := document.Update(tx, document.Bookings, func(b *models.Booking) (bool, error) {
			if b.ID != id {
				return false, nil
			}
			if b.Status != from {
				return false, utils.Conflict("booking %s is %s, expected %s", id, b.Status, from)
			}
			t.Apply(b)
			updated = *b
			return true, nil
		})
		if err != nil {
			return err
		}
		if n == 0 {
			return utils.NotFound("booking %s not found", id)
		}
		return nil
	})
	if err != nil {
		return nil, utils.Persistence("update booking", err)
	}
	return &updated, nil
}

func (r *DocumentBookingRepo) filter(ctx context.Context, keep func(models.Booking) bool) ([]models.Booking, error) {
	bookings, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}
