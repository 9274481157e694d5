// Package controller provides HTTP request handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/usecase/customer"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
	"github.com/salon-manager/backend/internal/integration/entrypoint/middleware"
)

// CustomerController handles customer roster endpoints. Every handler scopes
// its work to the authenticated salon.
type CustomerController struct {
	createUseCase *customer.CreateCustomerUseCase
	listUseCase   *customer.ListCustomersUseCase
	getUseCase    *customer.GetCustomerUseCase
	updateUseCase *customer.UpdateCustomerUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(
	createUseCase *customer.CreateCustomerUseCase,
	listUseCase *customer.ListCustomersUseCase,
	getUseCase *customer.GetCustomerUseCase,
	updateUseCase *customer.UpdateCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /customers.
func (ctrl *CustomerController) Create(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeCustomerNameRequired),
			Details: err.Error(),
		})
		return
	}

	output, err := ctrl.createUseCase.Execute(c.Request.Context(), customer.CreateCustomerInput{
		SalonID: salonID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		handleCustomerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(output.Customer))
}

// List handles GET /customers.
func (ctrl *CustomerController) List(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	limit, ok := parseIntQuery(c, "limit")
	if !ok {
		return
	}
	offset, ok := parseIntQuery(c, "offset")
	if !ok {
		return
	}

	output, err := ctrl.listUseCase.Execute(c.Request.Context(), customer.ListCustomersInput{
		SalonID: salonID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerListResponse(output.Customers, output.Total))
}

// Get handles GET /customers/:id.
func (ctrl *CustomerController) Get(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID",
		})
		return
	}

	output, err := ctrl.getUseCase.Execute(c.Request.Context(), customer.GetCustomerInput{
		SalonID:    salonID,
		CustomerID: customerID,
	})
	if err != nil {
		handleCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// Update handles PATCH /customers/:id.
func (ctrl *CustomerController) Update(c *gin.Context) {
	salonID, ok := middleware.GetSalonIDFromContext(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID",
		})
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := ctrl.updateUseCase.Execute(c.Request.Context(), customer.UpdateCustomerInput{
		SalonID:    salonID,
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		IsVIP:      req.IsVIP,
		IsActive:   req.IsActive,
	})
	if err != nil {
		handleCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(output.Customer))
}

// handleCustomerError maps domain customer errors to HTTP responses.
func handleCustomerError(c *gin.Context, err error) {
	var customerErr *domainerror.CustomerError
	if errors.As(err, &customerErr) {
		status := http.StatusBadRequest
		if customerErr.Code == domainerror.ErrCodeCustomerNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, dto.ErrorResponse{
			Error: customerErr.Message,
			Code:  string(customerErr.Code),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An unexpected error occurred",
	})
}

// parseIntQuery reads a non-negative integer query parameter, writing the
// error response itself on bad input. Absent parameters yield zero.
func parseIntQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Invalid %s parameter", name),
		})
		return 0, false
	}
	return value, true
}

// respondUnauthenticated rejects requests that reached a protected handler
// without an authenticated salon in context.
func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
