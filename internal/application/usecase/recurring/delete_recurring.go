// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for recurring transaction deletion.
type DeleteRecurringInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteRecurringUseCase handles permanent deletion of recurring transactions.
// Deleting removes the record from all summaries, past months included; use
// the status toggle to stop a bill without losing history.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute deletes the recurring transaction scoped to the requesting user.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	if _, err := uc.recurringRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring transaction not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	if err := uc.recurringRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}

	return nil
}
