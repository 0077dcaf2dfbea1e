// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
	"github.com/budget-pilot/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring transaction repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new recurring transaction in the database.
func (r *recurringRepository) Create(ctx context.Context, tx *entity.RecurringTransaction) error {
	txModel := model.RecurringTransactionFromEntity(tx)
	return r.db.WithContext(ctx).Create(txModel).Error
}

// FindByID retrieves a recurring transaction scoped by (id, userID).
func (r *recurringRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error) {
	var txModel model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, result.Error
	}
	return txModel.ToEntity(), nil
}

// FindByUserID retrieves all recurring transactions for a given user.
func (r *recurringRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var txModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.RecurringTransaction, len(txModels))
	for i, tm := range txModels {
		txs[i] = tm.ToEntity()
	}
	return txs, nil
}

// FindActiveStartedBy retrieves active recurring transactions whose start
// date is on or before the given date. This is the summary window query:
// started by the last day of the month and still active.
func (r *recurringRepository) FindActiveStartedBy(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.RecurringTransaction, error) {
	var txModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND start_date <= ?", userID, true, date).
		Order("name ASC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.RecurringTransaction, len(txModels))
	for i, tm := range txModels {
		txs[i] = tm.ToEntity()
	}
	return txs, nil
}

// Update updates an existing recurring transaction in the database.
func (r *recurringRepository) Update(ctx context.Context, tx *entity.RecurringTransaction) error {
	txModel := model.RecurringTransactionFromEntity(tx)
	return r.db.WithContext(ctx).Save(txModel).Error
}

// Delete permanently removes a recurring transaction scoped by (id, userID).
func (r *recurringRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecurringTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}
