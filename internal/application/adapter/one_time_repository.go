// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// OneTimeRepository defines the interface for one-time transaction persistence operations.
type OneTimeRepository interface {
	// Create creates a new one-time transaction in the database.
	Create(ctx context.Context, tx *entity.OneTimeTransaction) error

	// FindByID retrieves a one-time transaction by (id, userID).
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.OneTimeTransaction, error)

	// FindByUserID retrieves all one-time transactions for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OneTimeTransaction, error)

	// FindByDateRange retrieves one-time transactions with Date within
	// [start, end] inclusive.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.OneTimeTransaction, error)

	// Update updates an existing one-time transaction in the database.
	Update(ctx context.Context, tx *entity.OneTimeTransaction) error

	// Delete permanently removes a one-time transaction scoped by (id, userID).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
