package booking

import (
	"context"
	"time"

	accountRepo "thanawyia/database/repository/account"
	bookingRepo "thanawyia/database/repository/booking"
	"thanawyia/models"
	"thanawyia/services/notification"
)

// BookingService manages tutoring session bookings and their lifecycle.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*models.Booking, error)
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings        bookingRepo.BookingRepository
	Accounts        accountRepo.AccountRepository
	NotificationSvc notification.NotificationService
	Clock           func() time.Time
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	accounts accountRepo.AccountRepository,
	notificationSvc notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:        bookings,
		Accounts:        accounts,
		NotificationSvc: notificationSvc,
		Clock:           time.Now,
	}
}
