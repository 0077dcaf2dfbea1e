// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for savings goal deletion.
type DeleteGoalInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles permanent deletion of savings goals.
type DeleteGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute deletes the savings goal scoped to the requesting user.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if _, err := uc.goalRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return domainerror.NewSavingsGoalError(
				domainerror.ErrCodeSavingsGoalNotFound,
				"savings goal not found",
				domainerror.ErrSavingsGoalNotFound,
			)
		}
		return fmt.Errorf("failed to find savings goal: %w", err)
	}

	if err := uc.goalRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return nil
}
