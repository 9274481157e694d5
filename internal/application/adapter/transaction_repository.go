// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for sale record persistence
// operations. Completed appointments write here; the analytics engine reads.
type TransactionRepository interface {
	// Create creates a new sale record in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a sale record by ID within a salon.
	FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Transaction, error)

	// FindCompletedByPeriod retrieves a salon's completed sale records whose
	// occurrence date falls within [start, end], both inclusive.
	FindCompletedByPeriod(ctx context.Context, salonID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// UpdateStatus transitions a sale record to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error
}
