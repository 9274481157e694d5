// Package main is the entry point for the Salon Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/config"
	"github.com/salon-manager/backend/internal/application/usecase/analytics"
	"github.com/salon-manager/backend/internal/application/usecase/appointment"
	"github.com/salon-manager/backend/internal/application/usecase/auth"
	"github.com/salon-manager/backend/internal/application/usecase/customer"
	"github.com/salon-manager/backend/internal/infra/db"
	"github.com/salon-manager/backend/internal/infra/server/router"
	"github.com/salon-manager/backend/internal/integration/adapters"
	"github.com/salon-manager/backend/internal/integration/entrypoint/controller"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-manager/backend/internal/integration/persistence"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Salon Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CustomerModel{},
			&model.AppointmentModel{},
			&model.TransactionModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis client for login rate limiting
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var customerController *controller.CustomerController
	var appointmentController *controller.AppointmentController
	var analyticsController *controller.AnalyticsController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		customerRepo := persistence.NewCustomerRepository(database.DB())
		appointmentRepo := persistence.NewAppointmentRepository(database.DB())
		transactionRepo := persistence.NewTransactionRepository(database.DB())
		analyticsRepo := persistence.NewAnalyticsRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		// Create customer use cases
		createCustomerUseCase := customer.NewCreateCustomerUseCase(customerRepo)
		listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo)
		getCustomerUseCase := customer.NewGetCustomerUseCase(customerRepo)
		updateCustomerUseCase := customer.NewUpdateCustomerUseCase(customerRepo)

		// Create appointment use cases
		createAppointmentUseCase := appointment.NewCreateAppointmentUseCase(appointmentRepo, customerRepo)
		completeAppointmentUseCase := appointment.NewCompleteAppointmentUseCase(appointmentRepo, transactionRepo, customerRepo)
		cancelAppointmentUseCase := appointment.NewCancelAppointmentUseCase(appointmentRepo)
		listAppointmentsUseCase := appointment.NewListAppointmentsUseCase(appointmentRepo)

		// Create analytics use cases
		builderOpts := analytics.DefaultBuilderOptions()
		if rate, err := decimal.NewFromString(cfg.Analytics.CommissionRate); err == nil {
			builderOpts.CommissionRate = rate
		} else {
			slog.Warn("Invalid commission rate, using default",
				"value", cfg.Analytics.CommissionRate,
			)
		}
		classifierOpts := analytics.ClassifierOptions{
			HighValueShare: cfg.Analytics.HighValueShare,
		}

		revenueReportUseCase := analytics.NewGetRevenueReportUseCase(analyticsRepo, builderOpts)
		exportReportUseCase := analytics.NewExportRevenueReportUseCase(revenueReportUseCase)
		revenueGrowthUseCase := analytics.NewGetRevenueGrowthUseCase(analyticsRepo, builderOpts)
		customerSegmentsUseCase := analytics.NewGetCustomerSegmentsUseCase(analyticsRepo, classifierOpts)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		)
		customerController = controller.NewCustomerController(
			createCustomerUseCase,
			listCustomersUseCase,
			getCustomerUseCase,
			updateCustomerUseCase,
		)
		appointmentController = controller.NewAppointmentController(
			createAppointmentUseCase,
			completeAppointmentUseCase,
			cancelAppointmentUseCase,
			listAppointmentsUseCase,
		)
		analyticsController = controller.NewAnalyticsController(
			revenueReportUseCase,
			exportReportUseCase,
			revenueGrowthUseCase,
			customerSegmentsUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("API systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		customerController,
		appointmentController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
