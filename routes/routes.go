package routes

import (
	"context"
	"net/http"
	"time"

	"thanawyia/handlers"
	"thanawyia/middleware"
	"thanawyia/models"
	"thanawyia/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers the public registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterAccountRoutes registers profile, tutor directory and favorites endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Public tutor directory.
	tutors := r.Group("/api/tutors")
	{
		tutors.GET("", hb.ListTutorsHandler)
		tutors.GET("/:id/reviews", hb.ListTutorReviewsHandler)
	}

	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/me", hb.GetMeHandler)
		api.PATCH("/me", hb.UpdateMeHandler)
		api.GET("/me/favorites", middleware.RequireRole(models.RoleStudent), hb.GetFavoritesHandler)
		api.POST("/me/favorites/:tutorId", middleware.RequireRole(models.RoleStudent), hb.ToggleFavoriteHandler)
		api.GET("/:id", hb.GetAccountByIDHandler)
	}
}

// RegisterBookingRoutes sets up the session booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		bookingGroup.POST("", middleware.RequireRole(models.RoleStudent), hb.CreateBookingHandler)
		bookingGroup.GET("/mine", hb.ListMyBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.PATCH("/:id/status", middleware.RequireRole(models.RoleTutor, models.RoleAdmin), hb.UpdateStatusHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterMessageRoutes sets up direct messaging.
func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/inbox", hb.InboxHandler)
		api.GET("/conversation/:otherId", hb.ConversationHandler)
		api.POST("", hb.SendMessageHandler)
		api.PATCH("/:id/read", hb.MarkMessageReadHandler)
	}
}

// RegisterLedgerRoutes sets up transactions and notifications for the caller.
func RegisterLedgerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.AccountRepo)

	transactions := r.Group("/api/transactions", auth)
	{
		transactions.GET("", hb.ListMyTransactionsHandler)
		transactions.POST("", hb.CreateTransactionHandler)
	}

	notifications := r.Group("/api/notifications", auth)
	{
		notifications.GET("", hb.ListNotificationsHandler)
		notifications.PATCH("/read-all", hb.MarkAllNotificationsReadHandler)
		notifications.PATCH("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterReviewRoutes sets up review submission.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo), middleware.RequireRole(models.RoleStudent))
		api.POST("", hb.CreateReviewHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/settings", hb.GetSettingsHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.AccountRepo)...)
		adminGroup.GET("/users", hb.AdminUsersHandler)
		adminGroup.GET("/students", hb.AdminStudentsHandler)
		adminGroup.GET("/bookings", hb.AdminBookingsHandler)
		adminGroup.GET("/transactions", hb.AdminTransactionsHandler)
		adminGroup.PUT("/tutors/:id/approval", hb.AdminApprovalHandler)
		adminGroup.PATCH("/bookings/:id/status", hb.AdminBookingStatusHandler)
		adminGroup.PUT("/settings", hb.AdminSettingsHandler)
		adminGroup.GET("/reports/stats", hb.AdminStatsHandler)
		adminGroup.POST("/notifications", hb.AdminNotificationHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
// Checks run on demand when no background snapshot has been taken yet.
func RegisterHealthRoute(r *gin.Engine, checks []utils.HealthCheck) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		if status.CheckedAt.IsZero() {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			defer cancel()
			status = utils.RunHealthChecks(ctx, checks)
		}

		code := http.StatusOK
		state := "ok"
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "services": status.Services, "checkedAt": status.CheckedAt})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(utils.MetricsRegistry, promhttp.HandlerOpts{})))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, checks []utils.HealthCheck) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterLedgerRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, checks)
}
