// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// AppointmentModel represents the appointments table in the database.
type AppointmentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SalonID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID      uuid.UUID       `gorm:"type:uuid;not null"`
	ServiceName    string          `gorm:"type:varchar(100);not null"`
	StaffID        uuid.UUID       `gorm:"type:uuid;not null"`
	StaffName      string          `gorm:"type:varchar(100);not null"`
	ScheduledAt    time.Time       `gorm:"type:timestamp;not null;index"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	GrossAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AppointmentModel.
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToEntity converts an AppointmentModel to a domain Appointment entity.
func (m *AppointmentModel) ToEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:             m.ID,
		SalonID:        m.SalonID,
		CustomerID:     m.CustomerID,
		Service:        entity.ServiceRef{ID: m.ServiceID, Name: m.ServiceName},
		Staff:          entity.StaffRef{ID: m.StaffID, Name: m.StaffName},
		ScheduledAt:    m.ScheduledAt,
		Status:         entity.AppointmentStatus(m.Status),
		GrossAmount:    m.GrossAmount,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AppointmentFromEntity creates an AppointmentModel from a domain Appointment entity.
func AppointmentFromEntity(appointment *entity.Appointment) *AppointmentModel {
	return &AppointmentModel{
		ID:             appointment.ID,
		SalonID:        appointment.SalonID,
		CustomerID:     appointment.CustomerID,
		ServiceID:      appointment.Service.ID,
		ServiceName:    appointment.Service.Name,
		StaffID:        appointment.Staff.ID,
		StaffName:      appointment.Staff.Name,
		ScheduledAt:    appointment.ScheduledAt,
		Status:         string(appointment.Status),
		GrossAmount:    appointment.GrossAmount,
		TaxAmount:      appointment.TaxAmount,
		DiscountAmount: appointment.DiscountAmount,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}
}
