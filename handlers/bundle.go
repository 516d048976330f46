package handlers

import (
	accountRepo "thanawyia/database/repository/account"
	"thanawyia/services/account"
	"thanawyia/services/booking"
	"thanawyia/services/message"
	"thanawyia/services/notification"
	"thanawyia/services/report"
	"thanawyia/services/review"
	"thanawyia/services/settings"
	"thanawyia/services/transaction"

	"github.com/gin-gonic/gin"
)

// Services lists the domain services the HTTP layer calls.
type Services struct {
	Accounts      account.AccountService
	Bookings      booking.BookingService
	Messages      message.MessageService
	Transactions  transaction.TransactionService
	Notifications notification.NotificationService
	Reviews       review.ReviewService
	Settings      settings.SettingsService
	Reports       report.ReportService
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AccountRepo accountRepo.AccountRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc

	// Account endpoints
	GetMeHandler          gin.HandlerFunc
	UpdateMeHandler       gin.HandlerFunc
	GetAccountByIDHandler gin.HandlerFunc
	ListTutorsHandler     gin.HandlerFunc
	GetFavoritesHandler   gin.HandlerFunc
	ToggleFavoriteHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	ListMyBookingsHandler gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	UpdateStatusHandler   gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc

	// Message endpoints
	InboxHandler           gin.HandlerFunc
	ConversationHandler    gin.HandlerFunc
	SendMessageHandler     gin.HandlerFunc
	MarkMessageReadHandler gin.HandlerFunc

	// Transaction endpoints
	ListMyTransactionsHandler gin.HandlerFunc
	CreateTransactionHandler  gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler        gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc

	// Review endpoints
	ListTutorReviewsHandler gin.HandlerFunc
	CreateReviewHandler     gin.HandlerFunc

	// Settings
	GetSettingsHandler gin.HandlerFunc

	// Admin endpoints
	AdminUsersHandler         gin.HandlerFunc
	AdminStudentsHandler      gin.HandlerFunc
	AdminBookingsHandler      gin.HandlerFunc
	AdminTransactionsHandler  gin.HandlerFunc
	AdminApprovalHandler      gin.HandlerFunc
	AdminBookingStatusHandler gin.HandlerFunc
	AdminSettingsHandler      gin.HandlerFunc
	AdminStatsHandler         gin.HandlerFunc
	AdminNotificationHandler  gin.HandlerFunc
}

// NewHandlerBundle builds every handler and assembles the bundle used by the routes.
func NewHandlerBundle(accounts accountRepo.AccountRepository, svc Services) *HandlerBundle {
	authHandler := NewAuthHandler(svc.Accounts)
	accountHandler := NewAccountHandler(svc.Accounts)
	bookingHandler := NewBookingHandler(svc.Bookings)
	messageHandler := NewMessageHandler(svc.Messages)
	transactionHandler := NewTransactionHandler(svc.Transactions)
	notificationHandler := NewNotificationHandler(svc.Notifications)
	reviewHandler := NewReviewHandler(svc.Reviews)
	adminHandler := NewAdminHandler(svc.Accounts, svc.Settings, svc.Reports)

	return &HandlerBundle{
		AccountRepo: accounts,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,

		GetMeHandler:          accountHandler.GetMeHandler,
		UpdateMeHandler:       accountHandler.UpdateMeHandler,
		GetAccountByIDHandler: accountHandler.GetAccountByIDHandler,
		ListTutorsHandler:     accountHandler.ListTutorsHandler,
		GetFavoritesHandler:   accountHandler.GetFavoritesHandler,
		ToggleFavoriteHandler: accountHandler.ToggleFavoriteHandler,

		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		ListMyBookingsHandler: bookingHandler.ListMyBookingsHandler,
		GetBookingHandler:     bookingHandler.GetBookingHandler,
		UpdateStatusHandler:   bookingHandler.UpdateStatusHandler,
		CancelBookingHandler:  bookingHandler.CancelBookingHandler,

		InboxHandler:           messageHandler.InboxHandler,
		ConversationHandler:    messageHandler.ConversationHandler,
		SendMessageHandler:     messageHandler.SendMessageHandler,
		MarkMessageReadHandler: messageHandler.MarkMessageReadHandler,

		ListMyTransactionsHandler: transactionHandler.ListMyTransactionsHandler,
		CreateTransactionHandler:  transactionHandler.CreateTransactionHandler,

		ListNotificationsHandler:        notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler:     notificationHandler.MarkNotificationReadHandler,
		MarkAllNotificationsReadHandler: notificationHandler.MarkAllNotificationsReadHandler,

		ListTutorReviewsHandler: reviewHandler.ListTutorReviewsHandler,
		CreateReviewHandler:     reviewHandler.CreateReviewHandler,

		GetSettingsHandler: adminHandler.GetSettingsHandler,

		AdminUsersHandler:         adminHandler.GetAllUsersHandler,
		AdminStudentsHandler:      adminHandler.GetAllStudentsHandler,
		AdminBookingsHandler:      bookingHandler.ListAllBookingsHandler,
		AdminTransactionsHandler:  transactionHandler.ListAllTransactionsHandler,
		AdminApprovalHandler:      adminHandler.SetTutorApprovalHandler,
		AdminBookingStatusHandler: bookingHandler.UpdateStatusHandler,
		AdminSettingsHandler:      adminHandler.UpdateSettingsHandler,
		AdminStatsHandler:         adminHandler.GetStatsHandler,
		AdminNotificationHandler:  notificationHandler.CreateNotificationHandler,
	}
}
