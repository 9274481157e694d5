// Package appointment contains appointment booking use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// CancelAppointmentInput represents the input for cancelling an appointment.
type CancelAppointmentInput struct {
	SalonID       uuid.UUID
	AppointmentID uuid.UUID
}

// CancelAppointmentOutput represents the output of cancelling an appointment.
type CancelAppointmentOutput struct {
	Appointment *entity.Appointment
}

// CancelAppointmentUseCase handles appointment cancellation. Cancelled
// appointments never produce a sale record, so they are invisible to
// revenue aggregation.
type CancelAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
}

// NewCancelAppointmentUseCase creates a new CancelAppointmentUseCase instance.
func NewCancelAppointmentUseCase(appointmentRepo adapter.AppointmentRepository) *CancelAppointmentUseCase {
	return &CancelAppointmentUseCase{
		appointmentRepo: appointmentRepo,
	}
}

// Execute cancels the appointment.
func (uc *CancelAppointmentUseCase) Execute(ctx context.Context, input CancelAppointmentInput) (*CancelAppointmentOutput, error) {
	appointment, err := uc.appointmentRepo.FindByID(ctx, input.AppointmentID, input.SalonID)
	if err != nil {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNotFound,
			"appointment not found",
			domainerror.ErrAppointmentNotFound,
		)
	}

	if appointment.Status != entity.AppointmentStatusScheduled {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeAppointmentNotScheduled,
			fmt.Sprintf("appointment is %s, only scheduled appointments can be cancelled", appointment.Status),
			domainerror.ErrAppointmentNotScheduled,
		)
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now().UTC()
	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return &CancelAppointmentOutput{Appointment: appointment}, nil
}
