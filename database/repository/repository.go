package repository

import (
	"context"

	"thanawyia/database/document"
	accountRepo "thanawyia/database/repository/account"
	bookingRepo "thanawyia/database/repository/booking"
	messageRepo "thanawyia/database/repository/message"
	notificationRepo "thanawyia/database/repository/notification"
	reviewRepo "thanawyia/database/repository/review"
	settingsRepo "thanawyia/database/repository/settings"
	transactionRepo "thanawyia/database/repository/transaction"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	AccountRepository      = accountRepo.AccountRepository
	BookingRepository      = bookingRepo.BookingRepository
	MessageRepository      = messageRepo.MessageRepository
	TransactionRepository  = transactionRepo.TransactionRepository
	NotificationRepository = notificationRepo.NotificationRepository
	ReviewRepository       = reviewRepo.ReviewRepository
	SettingsRepository     = settingsRepo.SettingsRepository
)

// Repositories bundles one implementation of every repository.
type Repositories struct {
	Accounts      AccountRepository
	Bookings      BookingRepository
	Messages      MessageRepository
	Transactions  TransactionRepository
	Notifications NotificationRepository
	Reviews       ReviewRepository
	Settings      SettingsRepository

	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
}

// NewDocumentRepositories builds every repository on the shared document.
func NewDocumentRepositories(store *document.CollectionRepository) *Repositories {
	return &Repositories{
		Accounts:      accountRepo.NewDocumentAccountRepo(store),
		Bookings:      bookingRepo.NewDocumentBookingRepo(store),
		Messages:      messageRepo.NewDocumentMessageRepo(store),
		Transactions:  transactionRepo.NewDocumentTransactionRepo(store),
		Notifications: notificationRepo.NewDocumentNotificationRepo(store),
		Reviews:       reviewRepo.NewDocumentReviewRepo(store),
		Settings:      settingsRepo.NewDocumentSettingsRepo(store),
		Ping:          store.Ping,
	}
}

// NewMongoRepositories builds every repository on MongoDB collections.
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Accounts:      accountRepo.NewMongoAccountRepo(db),
		Bookings:      bookingRepo.NewMongoBookingRepo(db),
		Messages:      messageRepo.NewMongoMessageRepo(db),
		Transactions:  transactionRepo.NewMongoTransactionRepo(db),
		Notifications: notificationRepo.NewMongoNotificationRepo(db),
		Reviews:       reviewRepo.NewMongoReviewRepo(db),
		Settings:      settingsRepo.NewMongoSettingsRepo(db),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		},
	}
}
