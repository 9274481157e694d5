// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a sale.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodPayPal       PaymentMethod = "paypal"
	PaymentMethodOther        PaymentMethod = "other"
)

// ServiceRef identifies the salon service a sale was for. Walk-in product
// sales may carry no service at all, so transactions hold it as a pointer.
type ServiceRef struct {
	ID   uuid.UUID
	Name string
}

// StaffRef identifies the staff member who performed a sale.
type StaffRef struct {
	ID   uuid.UUID
	Name string
}

// Transaction represents a sale recorded by a salon. Only transactions with
// status completed are eligible for revenue aggregation.
type Transaction struct {
	ID             uuid.UUID
	SalonID        uuid.UUID
	CustomerID     *uuid.UUID
	OccurredAt     time.Time
	Status         TransactionStatus
	GrossAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TipAmount      decimal.Decimal
	Service        *ServiceRef
	Staff          *StaffRef
	PaymentMethod  PaymentMethod
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction creates a new completed Transaction entity.
func NewTransaction(
	salonID uuid.UUID,
	customerID *uuid.UUID,
	occurredAt time.Time,
	gross, tax, discount, tip decimal.Decimal,
	service *ServiceRef,
	staff *StaffRef,
	paymentMethod PaymentMethod,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:             uuid.New(),
		SalonID:        salonID,
		CustomerID:     customerID,
		OccurredAt:     occurredAt,
		Status:         TransactionStatusCompleted,
		GrossAmount:    gross,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TipAmount:      tip,
		Service:        service,
		Staff:          staff,
		PaymentMethod:  paymentMethod,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsValidPaymentMethod reports whether the given string is a known payment method.
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodPayPal, PaymentMethodOther:
		return true
	}
	return false
}
