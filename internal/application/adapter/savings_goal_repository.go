// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// SavingsGoalRepository defines the interface for savings goal persistence operations.
type SavingsGoalRepository interface {
	// Create creates a new savings goal in the database.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByID retrieves a savings goal by (id, userID).
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUserID retrieves all savings goals for a given user, ordered by
	// target date ascending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// Update updates an existing savings goal in the database.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete permanently removes a savings goal scoped by (id, userID).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
