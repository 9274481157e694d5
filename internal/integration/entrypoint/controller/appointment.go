// Package controller provides HTTP request handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/usecase/appointment"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
)

// AppointmentController handles appointment lifecycle endpoints.
type AppointmentController struct {
	createUseCase   *appointment.CreateAppointmentUseCase
	completeUseCase *appointment.CompleteAppointmentUseCase
	cancelUseCase   *appointment.CancelAppointmentUseCase
	listUseCase     *appointment.ListAppointmentsUseCase
}

// NewAppointmentController creates a new appointment controller instance.
func NewAppointmentController(
	createUseCase *appointment.CreateAppointmentUseCase,
	completeUseCase *appointment.CompleteAppointmentUseCase,
	cancelUseCase *appointment.CancelAppointmentUseCase,
	listUseCase *appointment.ListAppointmentsUseCase,
) *AppointmentController {
	return &AppointmentController{
		createUseCase:   createUseCase,
		completeUseCase: completeUseCase,
		cancelUseCase:   cancelUseCase,
		listUseCase:     listUseCase,
	}
}

// Create handles POST /appointments.
func (ctrl *AppointmentController) Create(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	// uuid bindings above guarantee these parse.
	customerID, _ := uuid.Parse(req.CustomerID)
	serviceID, _ := uuid.Parse(req.ServiceID)
	staffID, _ := uuid.Parse(req.StaffID)

	output, err := ctrl.createUseCase.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		SalonID:        salonID,
		CustomerID:     customerID,
		ServiceID:      serviceID,
		ServiceName:    req.ServiceName,
		StaffID:        staffID,
		StaffName:      req.StaffName,
		ScheduledAt:    req.ScheduledAt,
		GrossAmount:    req.GrossAmount,
		TaxAmount:      req.TaxAmount,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		handleAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(output.Appointment))
}

// Complete handles POST /appointments/:id/complete.
func (ctrl *AppointmentController) Complete(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid appointment ID",
		})
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	var completedAt time.Time
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	output, err := ctrl.completeUseCase.Execute(c.Request.Context(), appointment.CompleteAppointmentInput{
		SalonID:       salonID,
		AppointmentID: appointmentID,
		CompletedAt:   completedAt,
		TipAmount:     req.TipAmount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		handleAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CompleteAppointmentResponse{
		Appointment: dto.ToAppointmentResponse(output.Appointment),
		Sale:        dto.ToSaleResponse(output.Transaction),
	})
}

// Cancel handles POST /appointments/:id/cancel.
func (ctrl *AppointmentController) Cancel(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid appointment ID",
		})
		return
	}

	output, err := ctrl.cancelUseCase.Execute(c.Request.Context(), appointment.CancelAppointmentInput{
		SalonID:       salonID,
		AppointmentID: appointmentID,
	})
	if err != nil {
		handleAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponse(output.Appointment))
}

// List handles GET /appointments with optional customer_id, status, from and
// to filters.
func (ctrl *AppointmentController) List(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	input := appointment.ListAppointmentsInput{SalonID: salonID}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid customer_id filter",
			})
			return
		}
		input.CustomerID = &customerID
	}

	if raw := c.Query("status"); raw != "" {
		status := entity.AppointmentStatus(raw)
		if status != entity.AppointmentStatusScheduled &&
			status != entity.AppointmentStatusCompleted &&
			status != entity.AppointmentStatusCancelled {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status filter",
			})
			return
		}
		input.Status = &status
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid from date, expected YYYY-MM-DD",
			})
			return
		}
		input.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid to date, expected YYYY-MM-DD",
			})
			return
		}
		input.To = &to
	}

	output, err := ctrl.listUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		handleAppointmentError(c, err)
		return
	}

	responses := make([]dto.AppointmentResponse, len(output.Appointments))
	for i, appt := range output.Appointments {
		responses[i] = dto.ToAppointmentResponse(appt)
	}
	c.JSON(http.StatusOK, dto.AppointmentListResponse{
		Appointments: responses,
		Total:        output.Total,
	})
}

// handleAppointmentError maps domain appointment errors to HTTP responses.
func handleAppointmentError(c *gin.Context, err error) {
	var appointmentErr *domainerror.AppointmentError
	if errors.As(err, &appointmentErr) {
		c.JSON(getStatusCodeForAppointmentError(appointmentErr), dto.ErrorResponse{
			Error: appointmentErr.Message,
			Code:  string(appointmentErr.Code),
		})
		return
	}

	var customerErr *domainerror.CustomerError
	if errors.As(err, &customerErr) {
		handleCustomerError(c, err)
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

// getStatusCodeForAppointmentError returns the HTTP status code for an
// appointment error code.
func getStatusCodeForAppointmentError(appointmentErr *domainerror.AppointmentError) int {
	switch appointmentErr.Code {
	case domainerror.ErrCodeInvalidPaymentMethod:
		return http.StatusBadRequest
	case domainerror.ErrCodeAppointmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAppointmentNotScheduled:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
