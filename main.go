package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thanawyia/config"
	"thanawyia/database"
	"thanawyia/database/document"
	"thanawyia/database/repository"
	"thanawyia/handlers"
	"thanawyia/middleware"
	"thanawyia/routes"
	"thanawyia/services/account"
	"thanawyia/services/booking"
	"thanawyia/services/message"
	"thanawyia/services/notification"
	"thanawyia/services/report"
	"thanawyia/services/review"
	"thanawyia/services/settings"
	"thanawyia/services/transaction"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	repos, err := buildRepositories(rootCtx)
	if err != nil {
		logger.Fatal("main: failed to initialise storage", zap.String("backend", config.AppConfig.StoreBackend), zap.Error(err))
	}

	// services.
	notificationService := notification.NewDefaultNotificationService(repos.Notifications)
	accountService := account.NewDefaultAccountService(repos.Accounts, config.AppConfig.BcryptCost, config.AppConfig.TokenTTL)
	bookingService := booking.NewDefaultBookingService(repos.Bookings, repos.Accounts, notificationService)
	messageService := message.NewDefaultMessageService(repos.Messages)
	transactionService := transaction.NewDefaultTransactionService(repos.Transactions)
	reviewService := review.NewDefaultReviewService(repos.Reviews, repos.Accounts, notificationService)
	settingsService := settings.NewDefaultSettingsService(repos.Settings)
	reportService := &report.DefaultReportService{
		Accounts:     repos.Accounts,
		Bookings:     repos.Bookings,
		Transactions: repos.Transactions,
		Settings:     repos.Settings,
	}

	handlerBundle := handlers.NewHandlerBundle(repos.Accounts, handlers.Services{
		Accounts:      accountService,
		Bookings:      bookingService,
		Messages:      messageService,
		Transactions:  transactionService,
		Notifications: notificationService,
		Reviews:       reviewService,
		Settings:      settingsService,
		Reports:       reportService,
	})

	checks := []utils.HealthCheck{{Name: config.AppConfig.StoreBackend, Ping: repos.Ping}}
	utils.StartHealthMonitor(rootCtx, 30*time.Second, checks)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxyList()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle, checks)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s with %s storage...", srv.Addr, config.AppConfig.StoreBackend)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}
	if utils.DocumentCacheClient != nil {
		_ = utils.DocumentCacheClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// buildRepositories wires the configured storage backend. The document backends
// seed from the fixture on first read; mongo copies it into empty collections once.
func buildRepositories(ctx context.Context) (*repository.Repositories, error) {
	cfg := config.AppConfig
	cache := document.NewCache(
		document.NewFixtureSource(cfg.FixturePath),
		document.WithFreshness(cfg.CacheFreshness),
		document.WithFetchTimeout(cfg.FixtureTimeout),
	)
	seed := repository.HashSeedPasswords(cfg.BcryptCost)

	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		adapter := document.NewAdapter(document.NewMemoryStorage(), cache, document.WithSeedTransform(seed))
		return repository.NewDocumentRepositories(document.NewCollectionRepository(adapter)), nil

	case config.BackendRedis:
		client, err := utils.GetDocumentCacheClient()
		if err != nil {
			return nil, err
		}
		adapter := document.NewAdapter(document.NewRedisStorage(client, cfg.DocumentKey), cache, document.WithSeedTransform(seed))
		return repository.NewDocumentRepositories(document.NewCollectionRepository(adapter)), nil

	case config.BackendMongo:
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		db := database.Database()
		repos := repository.NewMongoRepositories(db)

		doc, err := cache.Load(ctx, true)
		if err != nil {
			utils.GetLogger().Warn("Fixture unavailable, skipping MongoDB seed", zap.Error(err))
			return repos, nil
		}
		if err := seed(doc); err != nil {
			return nil, err
		}
		if err := repository.SeedMongo(ctx, db, doc); err != nil {
			return nil, err
		}
		return repos, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StoreBackend)
	}
}
