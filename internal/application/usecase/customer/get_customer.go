// Package customer contains customer roster use cases.
package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

// GetCustomerInput represents the input for fetching a single customer.
type GetCustomerInput struct {
	SalonID    uuid.UUID
	CustomerID uuid.UUID
}

// GetCustomerOutput represents the output of fetching a single customer.
type GetCustomerOutput struct {
	Customer *entity.Customer
}

// GetCustomerUseCase handles single customer lookup logic.
type GetCustomerUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewGetCustomerUseCase creates a new GetCustomerUseCase instance.
func NewGetCustomerUseCase(customerRepo adapter.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
	}
}

// Execute fetches the customer, scoped to the salon.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, input GetCustomerInput) (*GetCustomerOutput, error) {
	customer, err := uc.customerRepo.FindByID(ctx, input.CustomerID, input.SalonID)
	if err != nil {
		// A customer of another salon is indistinguishable from a missing one.
		return nil, domainerror.NewCustomerError(
			domainerror.ErrCodeCustomerNotFound,
			"customer not found",
			domainerror.ErrCustomerNotFound,
		)
	}

	return &GetCustomerOutput{Customer: customer}, nil
}
