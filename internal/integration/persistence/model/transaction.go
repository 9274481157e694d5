// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salon-manager/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Service and staff references are denormalized name+ID pairs so the
// analytics engine never needs a join; both are nullable because walk-in
// product sales carry neither.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SalonID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid;index"`
	OccurredAt     time.Time       `gorm:"type:timestamp;not null;index"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	GrossAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TipAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ServiceID      *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceName    *string         `gorm:"type:varchar(100)"`
	StaffID        *uuid.UUID      `gorm:"type:uuid;index"`
	StaffName      *string         `gorm:"type:varchar(100)"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var service *entity.ServiceRef
	if m.ServiceID != nil && m.ServiceName != nil {
		service = &entity.ServiceRef{ID: *m.ServiceID, Name: *m.ServiceName}
	}

	var staff *entity.StaffRef
	if m.StaffID != nil && m.StaffName != nil {
		staff = &entity.StaffRef{ID: *m.StaffID, Name: *m.StaffName}
	}

	return &entity.Transaction{
		ID:             m.ID,
		SalonID:        m.SalonID,
		CustomerID:     m.CustomerID,
		OccurredAt:     m.OccurredAt,
		Status:         entity.TransactionStatus(m.Status),
		GrossAmount:    m.GrossAmount,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		TipAmount:      m.TipAmount,
		Service:        service,
		Staff:          staff,
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	transactionModel := &TransactionModel{
		ID:             transaction.ID,
		SalonID:        transaction.SalonID,
		CustomerID:     transaction.CustomerID,
		OccurredAt:     transaction.OccurredAt,
		Status:         string(transaction.Status),
		GrossAmount:    transaction.GrossAmount,
		TaxAmount:      transaction.TaxAmount,
		DiscountAmount: transaction.DiscountAmount,
		TipAmount:      transaction.TipAmount,
		PaymentMethod:  string(transaction.PaymentMethod),
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}

	if transaction.Service != nil {
		serviceID := transaction.Service.ID
		serviceName := transaction.Service.Name
		transactionModel.ServiceID = &serviceID
		transactionModel.ServiceName = &serviceName
	}
	if transaction.Staff != nil {
		staffID := transaction.Staff.ID
		staffName := transaction.Staff.Name
		transactionModel.StaffID = &staffID
		transactionModel.StaffName = &staffName
	}

	return transactionModel
}
