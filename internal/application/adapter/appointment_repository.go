// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// AppointmentFilter defines filter options for listing appointments.
type AppointmentFilter struct {
	SalonID    uuid.UUID
	CustomerID *uuid.UUID
	Status     *entity.AppointmentStatus
	From       *time.Time
	To         *time.Time
}

// AppointmentRepository defines the interface for appointment persistence operations.
type AppointmentRepository interface {
	// Create creates a new appointment in the database.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by ID within a salon.
	FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Appointment, error)

	// FindByFilter retrieves appointments matching the filter, ordered by
	// scheduled time ascending.
	FindByFilter(ctx context.Context, filter AppointmentFilter) ([]*entity.Appointment, error)

	// Update updates an existing appointment in the database.
	Update(ctx context.Context, appointment *entity.Appointment) error
}
