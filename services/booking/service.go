package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "thanawyia/database/repository/booking"
	"thanawyia/models"
	"thanawyia/utils"

	"go.uber.org/zap"
)

// Create books a session with an approved tutor. New bookings are always pending.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	student, err := s.Accounts.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.IsStudent() {
		return nil, utils.Validation("account %s is not a student", req.StudentID)
	}
	tutor, err := s.Accounts.GetByID(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}
	if !tutor.IsTutor() {
		return nil, utils.Validation("account %s is not a tutor", req.TutorID)
	}
	if !tutor.Approved {
		return nil, utils.Validation("tutor %s is not approved yet", req.TutorID)
	}

	price := req.Price
	if price == 0 {
		price = CalculateSessionPrice(tutor.HourlyRate, req.Duration)
	}

	booking := &models.Booking{
		ID:        utils.NewID(utils.BookingPrefix),
		StudentID: req.StudentID,
		TutorID:   req.TutorID,
		Subject:   req.Subject,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Price:     price,
		Notes:     req.Notes,
		Status:    models.BookingPending,
		CreatedAt: s.now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("Booking created", zap.String("bookingID", booking.ID), zap.String("tutorID", booking.TutorID))

	s.notify(ctx, booking.TutorID, "booking_request", "New booking request",
		fmt.Sprintf("%s requested a %s session on %s at %s", student.Name, booking.Subject, booking.Date, booking.Time))
	return booking, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll(ctx)
}

func (s *DefaultBookingService) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return s.Bookings.ListByStudent(ctx, studentID)
}

func (s *DefaultBookingService) ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error) {
	return s.Bookings.ListByTutor(ctx, tutorID)
}

// UpdateStatus moves a booking along the status table. Cancellation through
// here carries no reason; use Cancel to record one.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return s.transition(ctx, id, status, "")
}

// Cancel moves a pending or confirmed booking to cancelled with a reason.
func (s *DefaultBookingService) Cancel(ctx context.Context, id, reason string) (*models.Booking, error) {
	if err := utils.ValidateStruct(models.CancelRequest{Reason: reason}); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, models.BookingCancelled, reason)
}

func (s *DefaultBookingService) CountByStatus(ctx context.Context) (map[models.BookingStatus]int, error) {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[models.BookingStatus]int{
		models.BookingPending:   0,
		models.BookingConfirmed: 0,
		models.BookingCompleted: 0,
		models.BookingCancelled: 0,
	}
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (s *DefaultBookingService) transition(ctx context.Context, id string, to models.BookingStatus, reason string) (*models.Booking, error) {
	if err := utils.ValidateStruct(models.StatusRequest{Status: to}); err != nil {
		return nil, err
	}

	current, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, to) {
		return nil, utils.Validation("cannot change booking from %s to %s", current.Status, to)
	}

	updated, err := s.Bookings.Transition(ctx, id, current.Status, bookingRepo.StatusChange{
		To:     to,
		At:     s.now(),
		Reason: reason,
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Booking status changed",
		zap.String("bookingID", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(to)))

	s.notifyTransition(ctx, updated)
	return updated, nil
}

func (s *DefaultBookingService) notifyTransition(ctx context.Context, b *models.Booking) {
	switch b.Status {
	case models.BookingConfirmed:
		s.notify(ctx, b.StudentID, "booking_confirmed", "Booking confirmed",
			fmt.Sprintf("Your %s session on %s at %s was confirmed", b.Subject, b.Date, b.Time))
	case models.BookingCompleted:
		s.notify(ctx, b.StudentID, "booking_completed", "Session completed",
			fmt.Sprintf("Your %s session on %s is complete. Leave a review!", b.Subject, b.Date))
	case models.BookingCancelled:
		msg := fmt.Sprintf("The %s session on %s at %s was cancelled", b.Subject, b.Date, b.Time)
		if b.CancelReason != "" {
			msg += ": " + b.CancelReason
		}
		s.notify(ctx, b.StudentID, "booking_cancelled", "Booking cancelled", msg)
		s.notify(ctx, b.TutorID, "booking_cancelled", "Booking cancelled", msg)
	}
}

func (s *DefaultBookingService) notify(ctx context.Context, accountID, kind, title, message string) {
	if s.NotificationSvc == nil {
		return
	}
	s.NotificationSvc.Notify(ctx, accountID, kind, title, message)
}

func (s *DefaultBookingService) now() time.Time {
	return s.Clock().UTC()
}
