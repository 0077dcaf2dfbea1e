// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
//
// Creation is stricter than update: the current amount must still be below
// the target and the target date must be in the future. Updates may push a
// goal past either bound, which is how overfunded goals come to exist.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingsGoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute validates and persists a new savings goal.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			nil,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}

	if input.CurrentAmount.GreaterThanOrEqual(input.TargetAmount) {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeCurrentExceedsTarget,
			"current amount must be less than target amount",
			domainerror.ErrCurrentExceedsTarget,
		)
	}

	if !input.TargetDate.After(uc.clock.Now()) {
		return nil, domainerror.NewSavingsGoalError(
			domainerror.ErrCodeTargetDateNotFuture,
			"target date must be in the future",
			domainerror.ErrTargetDateNotFuture,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, input.Name, input.TargetAmount, input.CurrentAmount, input.TargetDate)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
