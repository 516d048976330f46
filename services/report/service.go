package report

import (
	"context"

	accountRepo "thanawyia/database/repository/account"
	bookingRepo "thanawyia/database/repository/booking"
	settingsRepo "thanawyia/database/repository/settings"
	transactionRepo "thanawyia/database/repository/transaction"
	"thanawyia/models"

	"github.com/shopspring/decimal"
)

// ReportService builds the admin dashboard figures.
type ReportService interface {
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
	BookingsByStatus(ctx context.Context) (map[models.BookingStatus]int, error)
}

type DefaultReportService struct {
	Accounts     accountRepo.AccountRepository
	Bookings     bookingRepo.BookingRepository
	Transactions transactionRepo.TransactionRepository
	Settings     settingsRepo.SettingsRepository
}

// PlatformStats counts accounts and sessions and sums completed payments.
// Revenue is the absolute value of completed payments; the fee applies the
// configured platform fraction to it.
func (s *DefaultReportService) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	accounts, err := s.Accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.Transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.PlatformStats{}
	for _, a := range accounts {
		switch a.Role {
		case models.RoleStudent:
			stats.TotalStudents++
		case models.RoleTutor:
			stats.TotalTutors++
			if a.Approved {
				stats.ActiveTutors++
			} else {
				stats.PendingTutors++
			}
		}
	}

	stats.TotalSessions = len(bookings)
	stats.BookingsByStatus = countByStatus(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.BookingCompleted:
			stats.CompletedSessions++
		case models.BookingPending:
			stats.PendingSessions++
		}
	}

	revenue := decimal.Zero
	for _, t := range txns {
		if t.Type == models.TransactionPayment && t.Status == models.TransactionCompleted {
			revenue = revenue.Add(decimal.NewFromFloat(t.Amount).Abs())
		}
	}
	stats.TotalRevenue = revenue.Round(2).InexactFloat64()
	stats.PlatformFee = revenue.Mul(decimal.NewFromFloat(settings.PlatformFee)).Round(2).InexactFloat64()
	return stats, nil
}

// BookingsByStatus counts bookings per status; every status is present, zero or not.
func (s *DefaultReportService) BookingsByStatus(ctx context.Context) (map[models.BookingStatus]int, error) {
	bookings, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return countByStatus(bookings), nil
}

func countByStatus(bookings []models.Booking) map[models.BookingStatus]int {
	counts := map[models.BookingStatus]int{
		models.BookingPending:   0,
		models.BookingConfirmed: 0,
		models.BookingCompleted: 0,
		models.BookingCancelled: 0,
	}
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}
