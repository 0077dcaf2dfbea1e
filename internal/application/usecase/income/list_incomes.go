// Package income contains income record use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for listing income records.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the output of listing income records.
type ListIncomesOutput struct {
	Incomes []*entity.IncomeRecord
}

// ListIncomesUseCase handles listing income records for a user.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute retrieves all income records for the user.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income records: %w", err)
	}

	return &ListIncomesOutput{
		Incomes: incomes,
	}, nil
}
