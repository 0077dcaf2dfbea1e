// Package recurring contains recurring transaction use cases.
package recurring

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

// UpdateRecurringInput represents the input for recurring transaction updates.
// Nil fields are left unchanged.
type UpdateRecurringInput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Amount    *decimal.Decimal
	Type      *entity.RecurringType
	Category  *string
	Frequency *entity.Frequency
	StartDate *time.Time
	IsActive  *bool
}

// UpdateRecurringOutput represents the output of a recurring transaction update.
type UpdateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// UpdateRecurringUseCase handles partial updates of recurring transactions.
type UpdateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(recurringRepo adapter.RecurringRepository) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute applies the supplied fields to the recurring transaction.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
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

	if err := uc.apply(tx, input); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	return &UpdateRecurringOutput{
		Recurring: tx,
	}, nil
}

func (uc *UpdateRecurringUseCase) apply(tx *entity.RecurringTransaction, input UpdateRecurringInput) error {
	if input.Name != nil {
		if *input.Name == "" {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"name must not be empty",
				nil,
			)
		}
		tx.Name = *input.Name
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidRecurringAmount,
				"recurring amount must be greater than zero",
				domainerror.ErrInvalidRecurringAmount,
			)
		}
		tx.Amount = *input.Amount
	}

	if input.Type != nil {
		if !entity.IsValidRecurringType(*input.Type) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidRecurringType,
				fmt.Sprintf("unknown recurring transaction type %q", *input.Type),
				domainerror.ErrInvalidRecurringType,
			)
		}
		tx.Type = *input.Type
	}

	if input.Category != nil {
		if *input.Category == "" {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"category must not be empty",
				nil,
			)
		}
		tx.Category = *input.Category
	}

	if input.Frequency != nil {
		if !entity.IsValidFrequency(*input.Frequency) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidFrequency,
				fmt.Sprintf("unknown frequency %q", *input.Frequency),
				domainerror.ErrInvalidFrequency,
			)
		}
		tx.Frequency = *input.Frequency
	}

	if input.StartDate != nil {
		tx.StartDate = *input.StartDate
	}

	if input.IsActive != nil {
		tx.IsActive = *input.IsActive
	}

	return nil
}
