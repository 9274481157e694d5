// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CustomerRepository defines the interface for customer persistence operations.
// Every lookup is scoped to a salon so one tenant can never read another's roster.
type CustomerRepository interface {
	// Create creates a new customer in the database.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a customer by ID within a salon.
	FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Customer, error)

	// FindBySalon retrieves all customers of a salon ordered by creation time.
	FindBySalon(ctx context.Context, salonID uuid.UUID) ([]*entity.Customer, error)

	// Update updates an existing customer in the database.
	Update(ctx context.Context, customer *entity.Customer) error

	// ExistsByEmail checks if a customer with the given email exists in the salon.
	ExistsByEmail(ctx context.Context, salonID uuid.UUID, email string) (bool, error)
}
