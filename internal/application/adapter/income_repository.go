// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income record persistence operations.
type IncomeRepository interface {
	// Create creates a new income record in the database.
	Create(ctx context.Context, income *entity.IncomeRecord) error

	// FindByID retrieves an income record by (id, userID). A record owned by
	// another user is reported as not found.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.IncomeRecord, error)

	// FindByUserID retrieves all income records for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error)

	// FindActiveByUserID retrieves income records with IsActive=true for a given user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error)

	// Update updates an existing income record in the database.
	Update(ctx context.Context, income *entity.IncomeRecord) error

	// Delete permanently removes an income record scoped by (id, userID).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
