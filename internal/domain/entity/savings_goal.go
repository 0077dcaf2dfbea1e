// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target with linear required-contribution
// semantics: the even monthly amount needed to reach TargetAmount by
// TargetDate across the remaining whole months.
//
// Goals are evaluated against the current time at computation, not against
// the month being summarized; they are a point-in-time overlay on every
// period, not historized per month.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(userID uuid.UUID, name string, targetAmount, currentAmount decimal.Decimal, targetDate time.Time) *SavingsGoal {
	now := time.Now().UTC()

	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
