// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// ToggleRecurringInput represents the input for a recurring status toggle.
type ToggleRecurringInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	IsActive bool
}

// ToggleRecurringOutput represents the output of a recurring status toggle.
type ToggleRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// ToggleRecurringUseCase flips the active status of a recurring transaction
// without touching any other field.
type ToggleRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewToggleRecurringUseCase creates a new ToggleRecurringUseCase instance.
func NewToggleRecurringUseCase(recurringRepo adapter.RecurringRepository) *ToggleRecurringUseCase {
	return &ToggleRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute sets the active status of the recurring transaction.
func (uc *ToggleRecurringUseCase) Execute(ctx context.Context, input ToggleRecurringInput) (*ToggleRecurringOutput, error) {
	tx, err := uc.recurringRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring transaction not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring transaction: %w", err)
	}

	tx.IsActive = input.IsActive
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction status: %w", err)
	}

	return &ToggleRecurringOutput{
		Recurring: tx,
	}, nil
}
