// Package income contains income record use cases.
package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income record deletion.
type DeleteIncomeInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteIncomeUseCase handles permanent deletion of income records.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute deletes the income record scoped to the requesting user.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	if _, err := uc.incomeRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income record not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return fmt.Errorf("failed to find income record: %w", err)
	}

	if err := uc.incomeRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete income record: %w", err)
	}

	return nil
}
