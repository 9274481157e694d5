// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/integration/entrypoint/controller"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	customerController    *controller.CustomerController
	appointmentController *controller.AppointmentController
	analyticsController   *controller.AnalyticsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	customerController *controller.CustomerController,
	appointmentController *controller.AppointmentController,
	analyticsController *controller.AnalyticsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		customerController:    customerController,
		appointmentController: appointmentController,
		analyticsController:   analyticsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Customer roster routes (require authentication)
		if r.customerController != nil && r.authMiddleware != nil {
			customers := v1.Group("/customers")
			customers.Use(r.authMiddleware.Authenticate())
			{
				customers.GET("", r.customerController.List)
				customers.POST("", r.customerController.Create)
				customers.GET("/:id", r.customerController.Get)
				customers.PATCH("/:id", r.customerController.Update)
			}
		}

		// Appointment lifecycle routes (require authentication)
		if r.appointmentController != nil && r.authMiddleware != nil {
			appointments := v1.Group("/appointments")
			appointments.Use(r.authMiddleware.Authenticate())
			{
				appointments.GET("", r.appointmentController.List)
				appointments.POST("", r.appointmentController.Create)
				appointments.POST("/:id/complete", r.appointmentController.Complete)
				appointments.POST("/:id/cancel", r.appointmentController.Cancel)
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/revenue", r.analyticsController.GetRevenueReport)
				analytics.GET("/revenue/export", r.analyticsController.ExportRevenueReport)
				analytics.GET("/growth", r.analyticsController.GetRevenueGrowth)
				analytics.GET("/segments", r.analyticsController.GetCustomerSegments)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
