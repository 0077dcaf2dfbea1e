// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeRecord represents a recurring or historical income stream.
//
// Date is informational (when the source began or ended), not a recurrence
// anchor: only IsActive decides whether the record contributes to monthly
// totals, and the amount is treated as a flat monthly constant with no
// frequency normalization.
type IncomeRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Source    string
	Amount    decimal.Decimal
	Date      time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncomeRecord creates a new IncomeRecord entity.
func NewIncomeRecord(userID uuid.UUID, source string, amount decimal.Decimal, date time.Time, isActive bool) *IncomeRecord {
	now := time.Now().UTC()

	return &IncomeRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Source:    source,
		Amount:    amount,
		Date:      date,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
