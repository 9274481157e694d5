// Package customer contains customer roster use cases.
package customer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// ListCustomersInput represents the input for listing a salon's roster.
// Limit of zero means no paging; Total always reflects the full roster.
type ListCustomersInput struct {
	SalonID uuid.UUID
	Limit   int
	Offset  int
}

// ListCustomersOutput represents the output of listing a salon's roster.
type ListCustomersOutput struct {
	Customers []*entity.Customer
	Total     int
}

// ListCustomersUseCase handles roster listing logic.
type ListCustomersUseCase struct {
	customerRepo adapter.CustomerRepository
}

// NewListCustomersUseCase creates a new ListCustomersUseCase instance.
func NewListCustomersUseCase(customerRepo adapter.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
	}
}

// Execute performs the roster listing.
func (uc *ListCustomersUseCase) Execute(ctx context.Context, input ListCustomersInput) (*ListCustomersOutput, error) {
	customers, err := uc.customerRepo.FindBySalon(ctx, input.SalonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	total := len(customers)
	page := customers
	if input.Offset > 0 {
		if input.Offset >= total {
			page = nil
		} else {
			page = page[input.Offset:]
		}
	}
	if input.Limit > 0 && input.Limit < len(page) {
		page = page[:input.Limit]
	}

	return &ListCustomersOutput{
		Customers: page,
		Total:     total,
	}, nil
}
