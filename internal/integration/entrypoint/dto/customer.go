// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CreateCustomerRequest represents the request body for customer creation.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateCustomerRequest represents the request body for customer updates.
// Absent fields are left unchanged.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,max=30"`
	IsVIP    *bool   `json:"is_vip"`
	IsActive *bool   `json:"is_active"`
}

// CustomerResponse represents customer data in API responses.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	VisitCount  int             `json:"visit_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	LastVisitAt *time.Time      `json:"last_visit_at,omitempty"`
	IsVIP       bool            `json:"is_vip"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CustomerListResponse represents the response for roster listing.
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

// ToCustomerResponse converts a domain Customer entity to a CustomerResponse DTO.
func ToCustomerResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		VisitCount:  customer.VisitCount,
		TotalSpent:  customer.TotalSpent,
		LastVisitAt: customer.LastVisitAt,
		IsVIP:       customer.IsVIP,
		IsActive:    customer.IsActive,
		CreatedAt:   customer.CreatedAt,
	}
}

// ToCustomerListResponse converts a roster page to a CustomerListResponse
// DTO. Total is the full roster size, not the page length.
func ToCustomerListResponse(customers []*entity.Customer, total int) CustomerListResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = ToCustomerResponse(customer)
	}
	return CustomerListResponse{
		Customers: responses,
		Total:     total,
	}
}
