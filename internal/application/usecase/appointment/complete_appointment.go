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

// CompleteAppointmentInput represents the input for completing an appointment.
type CompleteAppointmentInput struct {
	SalonID       uuid.UUID
	AppointmentID uuid.UUID
	CompletedAt   time.Time
	TipAmount     decimal.Decimal
	PaymentMethod string
}

// CompleteAppointmentOutput represents the output of completing an appointment.
type CompleteAppointmentOutput struct {
	Appointment *entity.Appointment
	Transaction *entity.Transaction
}

// CompleteAppointmentUseCase handles appointment completion. Completion is
// the only producer of completed sale records: it writes the transaction the
// analytics engine will aggregate and bumps the customer's visit statistics
// that feed segmentation.
type CompleteAppointmentUseCase struct {
	appointmentRepo adapter.AppointmentRepository
	transactionRepo adapter.TransactionRepository
	customerRepo    adapter.CustomerRepository
}

// NewCompleteAppointmentUseCase creates a new CompleteAppointmentUseCase instance.
func NewCompleteAppointmentUseCase(
	appointmentRepo adapter.AppointmentRepository,
	transactionRepo adapter.TransactionRepository,
	customerRepo adapter.CustomerRepository,
) *CompleteAppointmentUseCase {
	return &CompleteAppointmentUseCase{
		appointmentRepo: appointmentRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
	}
}

// Execute completes the appointment, records the sale and updates the customer.
func (uc *CompleteAppointmentUseCase) Execute(ctx context.Context, input CompleteAppointmentInput) (*CompleteAppointmentOutput, error) {
	if !entity.IsValidPaymentMethod(input.PaymentMethod) {
		return nil, domainerror.NewAppointmentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"invalid payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

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
			fmt.Sprintf("appointment is %s, only scheduled appointments can be completed", appointment.Status),
			domainerror.ErrAppointmentNotScheduled,
		)
	}

	completedAt := input.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	service := appointment.Service
	staff := appointment.Staff
	customerID := appointment.CustomerID
	transaction := entity.NewTransaction(
		appointment.SalonID,
		&customerID,
		completedAt,
		appointment.GrossAmount,
		appointment.TaxAmount,
		appointment.DiscountAmount,
		input.TipAmount,
		&service,
		&staff,
		entity.PaymentMethod(input.PaymentMethod),
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	appointment.Status = entity.AppointmentStatusCompleted
	appointment.UpdatedAt = time.Now().UTC()
	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	customer, err := uc.customerRepo.FindByID(ctx, appointment.CustomerID, appointment.SalonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	customer.RecordVisit(completedAt, appointment.GrossAmount)
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer statistics: %w", err)
	}

	return &CompleteAppointmentOutput{
		Appointment: appointment,
		Transaction: transaction,
	}, nil
}
