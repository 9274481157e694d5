// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/persistence/model"
)

// customerRepository implements the adapter.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance.
func NewCustomerRepository(db *gorm.DB) adapter.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create creates a new customer in the database.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Create(customerModel)
	return result.Error
}

// FindByID retrieves a customer by ID within a salon.
func (r *customerRepository) FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Customer, error) {
	var customerModel model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&customerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return customerModel.ToEntity(), nil
}

// FindBySalon retrieves all customers of a salon ordered by creation time.
func (r *customerRepository) FindBySalon(ctx context.Context, salonID uuid.UUID) ([]*entity.Customer, error) {
	var customerModels []model.CustomerModel
	result := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at ASC").
		Find(&customerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = customerModels[i].ToEntity()
	}
	return customers, nil
}

// Update updates an existing customer in the database.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	customerModel := model.CustomerFromEntity(customer)
	result := r.db.WithContext(ctx).Save(customerModel)
	return result.Error
}

// ExistsByEmail checks if a customer with the given email exists in the salon.
func (r *customerRepository) ExistsByEmail(ctx context.Context, salonID uuid.UUID, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("salon_id = ? AND email = ?", salonID, email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
