// Package recurring contains recurring transaction use cases.
package recurring

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

// CreateRecurringInput represents the input for recurring transaction creation.
type CreateRecurringInput struct {
	UserID    uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Type      entity.RecurringType
	Category  string
	Frequency entity.Frequency
	StartDate time.Time
}

// CreateRecurringOutput represents the output of recurring transaction creation.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring transaction creation logic.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
	clock         adapter.Clock
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(recurringRepo adapter.RecurringRepository, clock adapter.Clock) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
		clock:         clock,
	}
}

// Execute validates and persists a new recurring transaction. New records
// start active.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	tx := entity.NewRecurringTransaction(
		input.UserID,
		input.Name,
		input.Amount,
		input.Type,
		input.Category,
		input.Frequency,
		input.StartDate,
	)

	if err := uc.recurringRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{
		Recurring: tx,
	}, nil
}

func (uc *CreateRecurringUseCase) validate(input CreateRecurringInput) error {
	if input.Name == "" || input.Category == "" {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"name and category are required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"recurring amount must be greater than zero",
			domainerror.ErrInvalidRecurringAmount,
		)
	}

	if !entity.IsValidRecurringType(input.Type) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringType,
			fmt.Sprintf("unknown recurring transaction type %q", input.Type),
			domainerror.ErrInvalidRecurringType,
		)
	}

	if !entity.IsValidFrequency(input.Frequency) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			fmt.Sprintf("unknown frequency %q", input.Frequency),
			domainerror.ErrInvalidFrequency,
		)
	}

	// Compare calendar days, not instants: a start date of today is valid
	// regardless of time of day.
	today := uc.clock.Now().UTC().Truncate(24 * time.Hour)
	if input.StartDate.UTC().Truncate(24 * time.Hour).After(today) {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeStartDateInFuture,
			"start date must not be in the future",
			domainerror.ErrStartDateInFuture,
		)
	}

	return nil
}
