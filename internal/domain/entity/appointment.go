// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked salon service. Completing an appointment
// records a completed Transaction carrying the same service/staff refs.
type Appointment struct {
	ID             uuid.UUID
	SalonID        uuid.UUID
	CustomerID     uuid.UUID
	Service        ServiceRef
	Staff          StaffRef
	ScheduledAt    time.Time
	Status         AppointmentStatus
	GrossAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAppointment creates a new scheduled Appointment entity.
func NewAppointment(
	salonID, customerID uuid.UUID,
	service ServiceRef,
	staff StaffRef,
	scheduledAt time.Time,
	gross, tax, discount decimal.Decimal,
) *Appointment {
	now := time.Now().UTC()

	return &Appointment{
		ID:             uuid.New(),
		SalonID:        salonID,
		CustomerID:     customerID,
		Service:        service,
		Staff:          staff,
		ScheduledAt:    scheduledAt,
		Status:         AppointmentStatusScheduled,
		GrossAmount:    gross,
		TaxAmount:      tax,
		DiscountAmount: discount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
