// Package summary contains the monthly financial summary engine.
package summary

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// CanISpendInput represents the input for the spendability check.
type CanISpendInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// CanISpendOutput represents the result of the spendability check.
type CanISpendOutput struct {
	CanSpend            bool            `json:"can_spend"`
	RemainingAfterSpend decimal.Decimal `json:"remaining_after_spend"`
}

// CanISpendUseCase answers whether a hypothetical additional expense fits in
// the current month's cash remaining after the savings set-aside. A pure
// derived read: nothing about the hypothetical is persisted.
type CanISpendUseCase struct {
	builder *BuildMonthlySummaryUseCase
	clock   adapter.Clock
}

// NewCanISpendUseCase creates a new CanISpendUseCase instance.
func NewCanISpendUseCase(builder *BuildMonthlySummaryUseCase, clock adapter.Clock) *CanISpendUseCase {
	return &CanISpendUseCase{
		builder: builder,
		clock:   clock,
	}
}

// Execute builds the current month's summary and subtracts the hypothetical
// amount from the remaining-after-savings baseline.
func (uc *CanISpendUseCase) Execute(ctx context.Context, input CanISpendInput) (*CanISpendOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidSpendAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidSpendAmount,
		)
	}

	now := uc.clock.Now()
	current, err := uc.builder.Execute(ctx, BuildMonthlySummaryInput{
		UserID: input.UserID,
		Month:  int(now.Month()),
		Year:   now.Year(),
	})
	if err != nil {
		return nil, err
	}

	remaining := current.Savings.Remaining.Sub(input.Amount)

	return &CanISpendOutput{
		CanSpend:            !remaining.IsNegative(),
		RemainingAfterSpend: remaining,
	}, nil
}
