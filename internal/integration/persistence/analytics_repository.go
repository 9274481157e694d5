// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/application/usecase/analytics"
	"github.com/salon-manager/backend/internal/domain/entity"
)

// analyticsRepository implements the analytics.Repository interface on top of
// the sale and customer repositories. It is the single I/O seam of the
// analytics engine: everything past this point is pure computation.
type analyticsRepository struct {
	transactions adapter.TransactionRepository
	customers    adapter.CustomerRepository
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.Repository {
	return &analyticsRepository{
		transactions: NewTransactionRepository(db),
		customers:    NewCustomerRepository(db),
	}
}

// ListCompletedTransactions retrieves the salon's completed sales in the period.
func (r *analyticsRepository) ListCompletedTransactions(ctx context.Context, salonID uuid.UUID, period analytics.RevenuePeriod) ([]*entity.Transaction, error) {
	return r.transactions.FindCompletedByPeriod(ctx, salonID, period.Start, period.End)
}

// ListCustomers retrieves the salon's full customer roster.
func (r *analyticsRepository) ListCustomers(ctx context.Context, salonID uuid.UUID) ([]*entity.Customer, error) {
	return r.customers.FindBySalon(ctx, salonID)
}
