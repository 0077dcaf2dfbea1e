// Package onetime contains one-time transaction use cases.
package onetime

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

// CreateOneTimeInput represents the input for one-time transaction creation.
type CreateOneTimeInput struct {
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// CreateOneTimeOutput represents the output of one-time transaction creation.
type CreateOneTimeOutput struct {
	OneTime *entity.OneTimeTransaction
}

// CreateOneTimeUseCase handles one-time transaction creation logic.
type CreateOneTimeUseCase struct {
	oneTimeRepo adapter.OneTimeRepository
}

// NewCreateOneTimeUseCase creates a new CreateOneTimeUseCase instance.
func NewCreateOneTimeUseCase(oneTimeRepo adapter.OneTimeRepository) *CreateOneTimeUseCase {
	return &CreateOneTimeUseCase{
		oneTimeRepo: oneTimeRepo,
	}
}

// Execute validates and persists a new one-time transaction. The date may be
// in any month, past or future; the expense lands in the calendar month
// containing it.
func (uc *CreateOneTimeUseCase) Execute(ctx context.Context, input CreateOneTimeInput) (*CreateOneTimeOutput, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domainerror.NewOneTimeError(
			domainerror.ErrCodeMissingOneTimeFields,
			"name and category are required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewOneTimeError(
			domainerror.ErrCodeInvalidOneTimeAmount,
			"one-time amount must be greater than zero",
			domainerror.ErrInvalidOneTimeAmount,
		)
	}

	tx := entity.NewOneTimeTransaction(input.UserID, input.Name, input.Amount, input.Category, input.Date)

	if err := uc.oneTimeRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create one-time transaction: %w", err)
	}

	return &CreateOneTimeOutput{
		OneTime: tx,
	}, nil
}
