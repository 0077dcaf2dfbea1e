// Package income contains income record use cases.
package income

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

// UpdateIncomeInput represents the input for income record updates.
// Nil fields are left unchanged.
type UpdateIncomeInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Source   *string
	Amount   *decimal.Decimal
	Date     *time.Time
	IsActive *bool
}

// UpdateIncomeOutput represents the output of an income record update.
type UpdateIncomeOutput struct {
	Income *entity.IncomeRecord
}

// UpdateIncomeUseCase handles partial updates of income records.
type UpdateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute applies the supplied fields to the income record.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
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

	if input.Source != nil {
		if *input.Source == "" {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeMissingIncomeSource,
				"income source is required",
				domainerror.ErrMissingIncomeSource,
			)
		}
		income.Source = *input.Source
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeInvalidIncomeAmount,
				"income amount must not be negative",
				domainerror.ErrInvalidIncomeAmount,
			)
		}
		income.Amount = *input.Amount
	}

	if input.Date != nil {
		income.Date = *input.Date
	}

	if input.IsActive != nil {
		income.IsActive = *input.IsActive
	}

	income.UpdatedAt = time.Now().UTC()

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to update income record: %w", err)
	}

	return &UpdateIncomeOutput{
		Income: income,
	}, nil
}
