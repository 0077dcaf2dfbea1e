// Package onetime contains one-time transaction use cases.
package onetime

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

// UpdateOneTimeInput represents the input for one-time transaction updates.
// Nil fields are left unchanged. Changing the date moves the expense to the
// month containing the new date.
type UpdateOneTimeInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Name     *string
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
}

// UpdateOneTimeOutput represents the output of a one-time transaction update.
type UpdateOneTimeOutput struct {
	OneTime *entity.OneTimeTransaction
}

// UpdateOneTimeUseCase handles partial updates of one-time transactions.
type UpdateOneTimeUseCase struct {
	oneTimeRepo adapter.OneTimeRepository
}

// NewUpdateOneTimeUseCase creates a new UpdateOneTimeUseCase instance.
func NewUpdateOneTimeUseCase(oneTimeRepo adapter.OneTimeRepository) *UpdateOneTimeUseCase {
	return &UpdateOneTimeUseCase{
		oneTimeRepo: oneTimeRepo,
	}
}

// Execute applies the supplied fields to the one-time transaction.
func (uc *UpdateOneTimeUseCase) Execute(ctx context.Context, input UpdateOneTimeInput) (*UpdateOneTimeOutput, error) {
	tx, err := uc.oneTimeRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOneTimeNotFound) {
			return nil, domainerror.NewOneTimeError(
				domainerror.ErrCodeOneTimeNotFound,
				"one-time transaction not found",
				domainerror.ErrOneTimeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find one-time transaction: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewOneTimeError(
				domainerror.ErrCodeMissingOneTimeFields,
				"name must not be empty",
				nil,
			)
		}
		tx.Name = *input.Name
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewOneTimeError(
				domainerror.ErrCodeInvalidOneTimeAmount,
				"one-time amount must be greater than zero",
				domainerror.ErrInvalidOneTimeAmount,
			)
		}
		tx.Amount = *input.Amount
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewOneTimeError(
				domainerror.ErrCodeMissingOneTimeFields,
				"category must not be empty",
				nil,
			)
		}
		tx.Category = *input.Category
	}

	if input.Date != nil {
		tx.Date = *input.Date
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.oneTimeRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update one-time transaction: %w", err)
	}

	return &UpdateOneTimeOutput{
		OneTime: tx,
	}, nil
}
