// Package customer contains customer roster use cases.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// UpdateCustomerInput represents the input for customer updates. Nil fields
// are left untouched.
type UpdateCustomerInput struct {
	SalonID    uuid.UUID
	CustomerID uuid.UUID
	Name       *string
	Email      *string
	Phone      *string
	IsVIP      *bool
	IsActive   *bool
}

// UpdateCustomerOutput represents the output of a customer update.
type UpdateCustomerOutput struct {
	Customer *entity.Customer
}

// UpdateCustomerUseCase handles customer update logic. VIP status is the one
// segmentation input a salon owner sets by hand; the rest come from the
// appointment flow.
type UpdateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewUpdateCustomerUseCase creates a new UpdateCustomerUseCase instance.
func NewUpdateCustomerUseCase(customerRepo adapter.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer update.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, input UpdateCustomerInput) (*UpdateCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.SalonID)
	if err != nil {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNotFound,
			"customer not found",
			domainerror.ErrCustomerNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewCustomerError(
				domainerror.ErrCodeCustomerNameRequired,
				"customer name is required",
				domainerror.ErrCustomerNameRequired,
			)
		}
		customer.Name = name
	}
	if input.Email != nil {
		customer.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.IsVIP != nil {
		customer.IsVIP = *input.IsVIP
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return &UpdateCustomerOutput{Customer: customer}, nil
}
