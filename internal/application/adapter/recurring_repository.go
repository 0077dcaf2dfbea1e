// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// RecurringRepository defines the interface for recurring transaction persistence operations.
type RecurringRepository interface {
	// Create creates a new recurring transaction in the database.
	Create(ctx context.Context, tx *entity.RecurringTransaction) error

	// FindByID retrieves a recurring transaction by (id, userID).
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error)

	// FindByUserID retrieves all recurring transactions for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// FindActiveStartedBy retrieves recurring transactions with IsActive=true
	// and StartDate on or before the given date.
	FindActiveStartedBy(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.RecurringTransaction, error)

	// Update updates an existing recurring transaction in the database.
	Update(ctx context.Context, tx *entity.RecurringTransaction) error

	// Delete permanently removes a recurring transaction scoped by (id, userID).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
