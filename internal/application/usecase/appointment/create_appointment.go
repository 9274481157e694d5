// Package appointment contains appointment booking use cases.
package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// CreateAppointmentInput represents the input for booking an appointment.
type CreateAppointmentInput struct {
	SalonID        uuid.UUID
	CustomerID     uuid.UUID
	ServiceID      uuid.UUID
	ServiceName    string
	StaffID        uuid.UUID
	StaffName      string
	ScheduledAt    time.Time
	GrossAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
}

// CreateAppointmentOutput represents the output of booking an appointment.
type CreateAppointmentOutput struct {
	Appointment *entity.Appointment
}

// CreateAppointmentUseCase handles appointment booking logic.
type CreateAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	customerRepo    adapter.CustomerRepository
}

// NewCreateAppointmentUseCase creates a new CreateAppointmentUseCase instance.
func NewCreateAppointmentUseCase(
	appointmentRepo adapter.AppointmentRepository,
	customerRepo adapter.CustomerRepository,
) *CreateAppointmentUseCase {
	return &CreateAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
	}
}

// Execute books the appointment. The customer must belong to the salon.
func (uc *CreateAppointmentUseCase) Execute(ctx context.Context, input CreateAppointmentInput) (*CreateAppointmentOutput, error) {
	if _, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.SalonID); err != nil {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNotFound,
			"customer not found",
			domainerror.ErrCustomerNotFound,
		)
	}

	appointment := entity.NewAppointment(
		input.SalonID,
		input.CustomerID,
		entity.ServiceRef{ID: input.ServiceID, Name: input.ServiceName},
		entity.StaffRef{ID: input.StaffID, Name: input.StaffName},
		input.ScheduledAt,
		input.GrossAmount,
		input.TaxAmount,
		input.DiscountAmount,
	)

	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &CreateAppointmentOutput{Appointment: appointment}, nil
}
