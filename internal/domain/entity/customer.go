// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a salon customer. VisitCount, TotalSpent and
// LastVisitAt are maintained by the appointment-completion flow and are the
// inputs to behavioral segmentation.
type Customer struct {
	ID          uuid.UUID
	SalonID     uuid.UUID
	Name        string
	Email       string
	Phone       string
	CreatedAt   time.Time
	LastVisitAt *time.Time
	VisitCount  int
	TotalSpent  decimal.Decimal
	IsVIP       bool
	IsActive    bool
	UpdatedAt   time.Time
}

// NewCustomer creates a new Customer with zeroed visit statistics.
func NewCustomer(salonID uuid.UUID, name, email, phone string) *Customer {
	now := time.Now().UTC()

	return &Customer{
		ID:         uuid.New(),
		SalonID:    salonID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		CreatedAt:  now,
		VisitCount: 0,
		TotalSpent: decimal.Zero,
		IsVIP:      false,
		IsActive:   true,
		UpdatedAt:  now,
	}
}

// RecordVisit updates the customer's visit statistics after a completed sale.
func (c *Customer) RecordVisit(visitedAt time.Time, amountSpent decimal.Decimal) {
	c.VisitCount++
	c.TotalSpent = c.TotalSpent.Add(amountSpent)
	visited := visitedAt
	c.LastVisitAt = &visited
	c.UpdatedAt = time.Now().UTC()
}
