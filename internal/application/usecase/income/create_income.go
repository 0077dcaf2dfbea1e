// Package income contains income record use cases.
package income

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

// CreateIncomeInput represents the input for income record creation.
type CreateIncomeInput struct {
	UserID   uuid.UUID
	Source   string
	Amount   decimal.Decimal
	Date     time.Time
	IsActive *bool // Optional, defaults to true
}

// CreateIncomeOutput represents the output of income record creation.
type CreateIncomeOutput struct {
	Income *entity.IncomeRecord
}

// CreateIncomeUseCase handles income record creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income record creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if input.Source == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeSource,
			"income source is required",
			domainerror.ErrMissingIncomeSource,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must not be negative",
			domainerror.ErrInvalidIncomeAmount,
		)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	income := entity.NewIncomeRecord(input.UserID, input.Source, input.Amount, input.Date, isActive)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income record: %w", err)
	}

	return &CreateIncomeOutput{
		Income: income,
	}, nil
}
