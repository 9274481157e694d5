// Package customer contains customer roster use cases.
package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// CreateCustomerInput represents the input for customer creation.
type CreateCustomerInput struct {
	SalonID uuid.UUID
	Name    string
	Email   string
	Phone   string
}

// CreateCustomerOutput represents the output of customer creation.
type CreateCustomerOutput struct {
	Customer *entity.Customer
}

// CreateCustomerUseCase handles customer creation logic.
type CreateCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewCreateCustomerUseCase creates a new CreateCustomerUseCase instance.
func NewCreateCustomerUseCase(customerRepo adapter.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the customer creation.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, input CreateCustomerInput) (*CreateCustomerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNameRequired,
			"customer name is required",
			domainerror.ErrCustomerNameRequired,
		)
	}

	customer := entity.NewCustomer(input.SalonID, name, strings.TrimSpace(input.Email), strings.TrimSpace(input.Phone))

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &CreateCustomerOutput{Customer: customer}, nil
}
