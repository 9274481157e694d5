// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// CustomerModel represents the customers table in the database.
type CustomerModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SalonID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Email       string          `gorm:"type:varchar(255)"`
	Phone       string          `gorm:"type:varchar(30)"`
	LastVisitAt *time.Time      `gorm:"type:timestamp;index"`
	VisitCount  int             `gorm:"not null;default:0"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IsVIP       bool            `gorm:"column:is_vip;default:false"`
	IsActive    bool            `gorm:"default:true"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CustomerModel.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts a CustomerModel to a domain Customer entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:          m.ID,
		SalonID:     m.SalonID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		CreatedAt:   m.CreatedAt,
		LastVisitAt: m.LastVisitAt,
		VisitCount:  m.VisitCount,
		TotalSpent:  m.TotalSpent,
		IsVIP:       m.IsVIP,
		IsActive:    m.IsActive,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CustomerFromEntity creates a CustomerModel from a domain Customer entity.
func CustomerFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:          customer.ID,
		SalonID:     customer.SalonID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		LastVisitAt: customer.LastVisitAt,
		VisitCount:  customer.VisitCount,
		TotalSpent:  customer.TotalSpent,
		IsVIP:       customer.IsVIP,
		IsActive:    customer.IsActive,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}
