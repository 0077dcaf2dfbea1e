// Package income contains income record use cases.
package income

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

// ToggleIncomeInput represents the input for an income status toggle.
type ToggleIncomeInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	IsActive bool
}

// ToggleIncomeOutput represents the output of an income status toggle.
type ToggleIncomeOutput struct {
	Income *entity.IncomeRecord
}

// ToggleIncomeUseCase flips the active status of an income record without
// touching any other field. An inactive record is excluded from summaries
// immediately but keeps its history.
type ToggleIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewToggleIncomeUseCase creates a new ToggleIncomeUseCase instance.
func NewToggleIncomeUseCase(incomeRepo adapter.IncomeRepository) *ToggleIncomeUseCase {
	return &ToggleIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute sets the active status of the income record.
func (uc *ToggleIncomeUseCase) Execute(ctx context.Context, input ToggleIncomeInput) (*ToggleIncomeOutput, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income record not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income record: %w", err)
	}

	income.IsActive = input.IsActive
	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income record status: %w", err)
	}

	return &ToggleIncomeOutput{
		Income: income,
	}, nil
}
