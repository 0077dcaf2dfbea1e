// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringType represents the kind of recurring obligation.
type RecurringType string

const (
	RecurringTypeBill         RecurringType = "BILL"
	RecurringTypeSubscription RecurringType = "SUBSCRIPTION"
)

// Frequency represents the cadence at which a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// IsValidRecurringType reports whether t is a known recurring type.
func IsValidRecurringType(t RecurringType) bool {
	return t == RecurringTypeBill || t == RecurringTypeSubscription
}

// IsValidFrequency reports whether f is a known frequency.
func IsValidFrequency(f Frequency) bool {
	return f == FrequencyDaily || f == FrequencyWeekly ||
		f == FrequencyMonthly || f == FrequencyYearly
}

// RecurringTransaction represents a bill or subscription recurring
// indefinitely from StartDate while IsActive is true.
//
// A recurring transaction is included in a month's summary when
// StartDate <= last day of that month AND IsActive == true. Toggling
// IsActive excludes the record from all future summaries immediately but
// does not delete history.
type RecurringTransaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Type      RecurringType
	Category  string
	Frequency Frequency
	StartDate time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	recurringType RecurringType,
	category string,
	frequency Frequency,
	startDate time.Time,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Type:      recurringType,
		Category:  category,
		Frequency: frequency,
		StartDate: startDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
