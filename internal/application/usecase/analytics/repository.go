package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// Repository defines the engine's input boundary. Implementations are
// responsible for authorization and filtering: transactions come back
// already restricted to status=completed and to the requested period, and
// the engine never re-filters or re-authorizes.
type Repository interface {
	// ListCompletedTransactions returns the salon's completed transactions
	// whose occurred_at falls inside the period, ordered by occurred_at.
	ListCompletedTransactions(ctx context.Context, salonID uuid.UUID, period RevenuePeriod) ([]*entity.Transaction, error)

	// ListCustomers returns the salon's full customer roster.
	ListCustomers(ctx context.Context, salonID uuid.UUID) ([]*entity.Customer, error)
}
