// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for savings goal updates. Nil fields
// are left unchanged.
//
// Unlike creation, updates do not require CurrentAmount < TargetAmount or a
// future TargetDate: an existing goal may legitimately become overfunded or
// outlive its deadline.
type UpdateGoalInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
}

// UpdateGoalOutput represents the output of a savings goal update.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles partial updates of savings goals.
type UpdateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute applies the supplied fields to the savings goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeSavingsGoalNotFound,
				"savings goal not found",
				domainerror.ErrSavingsGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name must not be empty",
				nil,
			)
		}
		goal.Name = *input.Name
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.CurrentAmount != nil {
		if input.CurrentAmount.IsNegative() {
			return nil, domainerror.NewSavingsGoalError(
				domainerror.ErrCodeInvalidCurrentAmount,
				"current amount must not be negative",
				domainerror.ErrInvalidCurrentAmount,
			)
		}
		goal.CurrentAmount = *input.CurrentAmount
	}

	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
