// Package controller provides HTTP request handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salon-manager/backend/internal/application/usecase/analytics"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles revenue and customer analytics endpoints. The
// handlers own all request-time parsing, so the engine underneath never sees
// a raw query string or a clock.
type AnalyticsController struct {
	reportUseCase   *analytics.GetRevenueReportUseCase
	exportUseCase   *analytics.ExportRevenueReportUseCase
	growthUseCase   *analytics.GetRevenueGrowthUseCase
	segmentsUseCase *analytics.GetCustomerSegmentsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	reportUseCase *analytics.GetRevenueReportUseCase,
	exportUseCase *analytics.ExportRevenueReportUseCase,
	growthUseCase *analytics.GetRevenueGrowthUseCase,
	segmentsUseCase *analytics.GetCustomerSegmentsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		reportUseCase:   reportUseCase,
		exportUseCase:   exportUseCase,
		growthUseCase:   growthUseCase,
		segmentsUseCase: segmentsUseCase,
	}
}

// GetRevenueReport handles GET /analytics/revenue.
func (ctrl *AnalyticsController) GetRevenueReport(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	startDate, endDate, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	report, err := ctrl.reportUseCase.Execute(c.Request.Context(), analytics.GetRevenueReportInput{
		SalonID:   salonID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueReportResponse(report))
}

// ExportRevenueReport handles GET /analytics/revenue/export. The report is
// rendered as sectioned CSV and served as a file attachment.
func (ctrl *AnalyticsController) ExportRevenueReport(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	startDate, endDate, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	file, err := ctrl.exportUseCase.Execute(c.Request.Context(), analytics.GetRevenueReportInput{
		SalonID:   salonID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "text/csv", []byte(file.Content))
}

// GetRevenueGrowth handles GET /analytics/growth.
func (ctrl *AnalyticsController) GetRevenueGrowth(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	startDate, endDate, ok := parsePeriodQuery(c)
	if !ok {
		return
	}

	output, err := ctrl.growthUseCase.Execute(c.Request.Context(), analytics.GetRevenueGrowthInput{
		SalonID:   salonID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRevenueGrowthResponse(output))
}

// GetCustomerSegments handles GET /analytics/segments. An optional as_of
// query pins the classification reference date; it defaults to now.
func (ctrl *AnalyticsController) GetCustomerSegments(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		asOf = parsed
	}

	output, err := ctrl.segmentsUseCase.Execute(c.Request.Context(), analytics.GetCustomerSegmentsInput{
		SalonID: salonID,
		AsOf:    asOf,
	})
	if err != nil {
		handleAnalyticsError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerSegmentsResponse(output))
}

// parsePeriodQuery reads the start_date and end_date query parameters. It
// writes the error response itself and reports success through the bool.
func parsePeriodQuery(c *gin.Context) (time.Time, time.Time, bool) {
	rawStart := c.Query("start_date")
	if rawStart == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "start_date is required",
			Code:  string(domainerror.ErrCodeMissingStartDate),
		})
		return time.Time{}, time.Time{}, false
	}

	rawEnd := c.Query("end_date")
	if rawEnd == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "end_date is required",
			Code:  string(domainerror.ErrCodeMissingEndDate),
		})
		return time.Time{}, time.Time{}, false
	}

	startDate, err := time.Parse("2006-01-02", rawStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	endDate, err := time.Parse("2006-01-02", rawEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

// handleAnalyticsError maps domain analytics errors to HTTP responses.
func handleAnalyticsError(c *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}
