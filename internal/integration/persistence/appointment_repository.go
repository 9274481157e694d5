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

// appointmentRepository implements the adapter.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository instance.
func NewAppointmentRepository(db *gorm.DB) adapter.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create creates a new appointment in the database.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentModel := model.AppointmentFromEntity(appointment)
	result := r.db.WithContext(ctx).Create(appointmentModel)
	return result.Error
}

// FindByID retrieves an appointment by ID within a salon.
func (r *appointmentRepository) FindByID(ctx context.Context, id, salonID uuid.UUID) (*entity.Appointment, error) {
	var appointmentModel model.AppointmentModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&appointmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAppointmentNotFound
		}
		return nil, result.Error
	}
	return appointmentModel.ToEntity(), nil
}

// FindByFilter retrieves appointments matching the filter, ordered by
// scheduled time ascending.
func (r *appointmentRepository) FindByFilter(ctx context.Context, filter adapter.AppointmentFilter) ([]*entity.Appointment, error) {
	query := r.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("salon_id = ?", filter.SalonID)

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.From != nil {
		query = query.Where("scheduled_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_at <= ?", *filter.To)
	}

	var appointmentModels []model.AppointmentModel
	result := query.Order("scheduled_at ASC").Find(&appointmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	appointments := make([]*entity.Appointment, len(appointmentModels))
	for i := range appointmentModels {
		appointments[i] = appointmentModels[i].ToEntity()
	}
	return appointments, nil
}

// Update updates an existing appointment in the database.
func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	appointmentModel := model.AppointmentFromEntity(appointment)
	result := r.db.WithContext(ctx).Save(appointmentModel)
	return result.Error
}
