// Package appointment contains appointment booking use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// ListAppointmentsInput represents the input for listing appointments.
type ListAppointmentsInput struct {
	SalonID    uuid.UUID
	CustomerID *uuid.UUID
	Status     *entity.AppointmentStatus
	From       *time.Time
	To         *time.Time
}

// ListAppointmentsOutput represents the output of listing appointments.
type ListAppointmentsOutput struct {
	Appointments []*entity.Appointment
	Total        int
}

// ListAppointmentsUseCase handles appointment listing logic.
type ListAppointmentsUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewListAppointmentsUseCase creates a new ListAppointmentsUseCase instance.
func NewListAppointmentsUseCase(appointmentRepo adapter.AppointmentRepository) *ListAppointmentsUseCase {
	return &ListAppointmentsUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute lists the salon's appointments matching the optional filters.
func (uc *ListAppointmentsUseCase) Execute(ctx context.Context, input ListAppointmentsInput) (*ListAppointmentsOutput, error) {
	filter := adapter.AppointmentFilter{
		SalonID:    input.SalonID,
		CustomerID: input.CustomerID,
		Status:     input.Status,
		From:       input.From,
		To:         input.To,
	}

	appointments, err := uc.appointmentRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return &ListAppointmentsOutput{
		Appointments: appointments,
		Total:        len(appointments),
	}, nil
}
