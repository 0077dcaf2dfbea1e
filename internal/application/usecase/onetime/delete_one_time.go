// Package onetime contains one-time transaction use cases.
package onetime

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// DeleteOneTimeInput represents the input for one-time transaction deletion.
type DeleteOneTimeInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteOneTimeUseCase handles permanent deletion of one-time transactions.
type DeleteOneTimeUseCase struct {
	oneTimeRepo adapter.OneTimeRepository
}

// NewDeleteOneTimeUseCase creates a new DeleteOneTimeUseCase instance.
func NewDeleteOneTimeUseCase(oneTimeRepo adapter.OneTimeRepository) *DeleteOneTimeUseCase {
	return &DeleteOneTimeUseCase{
		oneTimeRepo: oneTimeRepo,
	}
}

// Execute deletes the one-time transaction scoped to the requesting user.
func (uc *DeleteOneTimeUseCase) Execute(ctx context.Context, input DeleteOneTimeInput) error {
	if _, err := uc.oneTimeRepo.FindByID(ctx, input.ID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrOneTimeNotFound) {
			return domainerror.NewOneTimeError(
				domainerror.ErrCodeOneTimeNotFound,
				"one-time transaction not found",
				domainerror.ErrOneTimeNotFound,
			)
		}
		return fmt.Errorf("failed to find one-time transaction: %w", err)
	}

	if err := uc.oneTimeRepo.Delete(ctx, input.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete one-time transaction: %w", err)
	}

	return nil
}
