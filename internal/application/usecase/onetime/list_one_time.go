// Package onetime contains one-time transaction use cases.
package onetime

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
)

// ListOneTimeInput represents the input for listing one-time transactions.
// When both From and To are set the listing is restricted to that inclusive
// date range; otherwise all transactions are returned.
type ListOneTimeInput struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
}

// ListOneTimeOutput represents the output of listing one-time transactions.
type ListOneTimeOutput struct {
	OneTime []*entity.OneTimeTransaction
}

// ListOneTimeUseCase handles listing one-time transactions for a user.
type ListOneTimeUseCase struct {
	oneTimeRepo adapter.OneTimeRepository
}

// NewListOneTimeUseCase creates a new ListOneTimeUseCase instance.
func NewListOneTimeUseCase(oneTimeRepo adapter.OneTimeRepository) *ListOneTimeUseCase {
	return &ListOneTimeUseCase{
		oneTimeRepo: oneTimeRepo,
	}
}

// Execute retrieves one-time transactions for the user.
func (uc *ListOneTimeUseCase) Execute(ctx context.Context, input ListOneTimeInput) (*ListOneTimeOutput, error) {
	var (
		txs []*entity.OneTimeTransaction
		err error
	)

	if input.From != nil && input.To != nil {
		txs, err = uc.oneTimeRepo.FindByDateRange(ctx, input.UserID, *input.From, *input.To)
	} else {
		txs, err = uc.oneTimeRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list one-time transactions: %w", err)
	}

	return &ListOneTimeOutput{
		OneTime: txs,
	}, nil
}
