// Package controller provides HTTP request handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// Check handles GET /health.
func (ctrl *HealthController) Check(c *gin.Context) {
	overall := "ok"
	dbStatus := "up"
	status := http.StatusOK

	if ctrl.dbHealthChecker != nil && !ctrl.dbHealthChecker() {
		overall = "degraded"
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, HealthResponse{
		Status:    overall,
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
