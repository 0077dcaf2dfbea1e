// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OneTimeTransaction represents a single expense attributed to the calendar
// month containing Date.
type OneTimeTransaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOneTimeTransaction creates a new OneTimeTransaction entity.
func NewOneTimeTransaction(userID uuid.UUID, name string, amount decimal.Decimal, category string, date time.Time) *OneTimeTransaction {
	now := time.Now().UTC()

	return &OneTimeTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
