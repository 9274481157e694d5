// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new sale record repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new sale record in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	return result.Error
}

// FindByID retrieves a sale record by ID within a salon.
func (r *transactionRepository) FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&transactionModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindCompletedByPeriod retrieves a salon's completed sale records whose
// occurrence date falls within [start, end], both inclusive. The end bound is
// pushed to the end of its day so timestamped sales on the last day count.
func (r *transactionRepository) FindCompletedByPeriod(ctx context.Context, salonID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	endOfDay := end.Add(24*time.Hour - time.Nanosecond)

	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("salon_id = ? AND status = ? AND occurred_at >= ? AND occurred_at <= ?",
			salonID, string(entity.TransactionStatusCompleted), start, endOfDay).
		Order("occurred_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, nil
}

// UpdateStatus transitions a sale record to the given status.
func (r *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	return result.Error
}
