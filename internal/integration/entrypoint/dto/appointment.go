// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	CustomerID     string          `json:"customer_id" binding:"required,uuid"`
	ServiceID      string          `json:"service_id" binding:"required,uuid"`
	ServiceName    string          `json:"service_name" binding:"required,min=1,max=100"`
	StaffID        string          `json:"staff_id" binding:"required,uuid"`
	StaffName      string          `json:"staff_name" binding:"required,min=1,max=100"`
	ScheduledAt    time.Time       `json:"scheduled_at" binding:"required"`
	GrossAmount    decimal.Decimal `json:"gross_amount" binding:"required"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// CompleteAppointmentRequest represents the request body for completing an appointment.
type CompleteAppointmentRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	TipAmount     decimal.Decimal `json:"tip_amount"`
	CompletedAt   *time.Time      `json:"completed_at"`
}

// AppointmentResponse represents appointment data in API responses.
type AppointmentResponse struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	ServiceID      string          `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	StaffID        string          `json:"staff_id"`
	StaffName      string          `json:"staff_name"`
	ScheduledAt    time.Time       `json:"scheduled_at"`
	Status         string          `json:"status"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AppointmentListResponse represents the response for appointment listing.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// SaleResponse represents the sale record produced by appointment completion.
type SaleResponse struct {
	ID            string          `json:"id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	TipAmount     decimal.Decimal `json:"tip_amount"`
	PaymentMethod string          `json:"payment_method"`
}

// CompleteAppointmentResponse represents the response for appointment completion.
type CompleteAppointmentResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Sale        SaleResponse        `json:"sale"`
}

// ToAppointmentResponse converts a domain Appointment entity to an AppointmentResponse DTO.
func ToAppointmentResponse(appointment *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:             appointment.ID.String(),
		CustomerID:     appointment.CustomerID.String(),
		ServiceID:      appointment.Service.ID.String(),
		ServiceName:    appointment.Service.Name,
		StaffID:        appointment.Staff.ID.String(),
		StaffName:      appointment.Staff.Name,
		ScheduledAt:    appointment.ScheduledAt,
		Status:         string(appointment.Status),
		GrossAmount:    appointment.GrossAmount,
		TaxAmount:      appointment.TaxAmount,
		DiscountAmount: appointment.DiscountAmount,
		CreatedAt:      appointment.CreatedAt,
	}
}

// ToSaleResponse converts a domain Transaction entity to a SaleResponse DTO.
func ToSaleResponse(transaction *entity.Transaction) SaleResponse {
	return SaleResponse{
		ID:            transaction.ID.String(),
		OccurredAt:    transaction.OccurredAt,
		GrossAmount:   transaction.GrossAmount,
		TipAmount:     transaction.TipAmount,
		PaymentMethod: string(transaction.PaymentMethod),
	}
}
