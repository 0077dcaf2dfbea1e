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

// oneTimeRepository implements the adapter.OneTimeRepository interface.
type oneTimeRepository struct {
	db *gorm.DB
}

// NewOneTimeRepository creates a new one-time transaction repository instance.
func NewOneTimeRepository(db *gorm.DB) adapter.OneTimeRepository {
	return &oneTimeRepository{
		db: db,
	}
}

// Create creates a new one-time transaction in the database.
func (r *oneTimeRepository) Create(ctx context.Context, tx *entity.OneTimeTransaction) error {
	txModel := model.OneTimeTransactionFromEntity(tx)
	return r.db.WithContext(ctx).Create(txModel).Error
}

// FindByID retrieves a one-time transaction scoped by (id, userID).
func (r *oneTimeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.OneTimeTransaction, error) {
	var txModel model.OneTimeTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOneTimeNotFound
		}
		return nil, result.Error
	}
	return txModel.ToEntity(), nil
}

// FindByUserID retrieves all one-time transactions for a given user.
func (r *oneTimeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OneTimeTransaction, error) {
	var txModels []model.OneTimeTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.OneTimeTransaction, len(txModels))
	for i, tm := range txModels {
		txs[i] = tm.ToEntity()
	}
	return txs, nil
}

// FindByDateRange retrieves one-time transactions with date within
// [start, end] inclusive.
func (r *oneTimeRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.OneTimeTransaction, error) {
	var txModels []model.OneTimeTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&txModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.OneTimeTransaction, len(txModels))
	for i, tm := range txModels {
		txs[i] = tm.ToEntity()
	}
	return txs, nil
}

// Update updates an existing one-time transaction in the database.
func (r *oneTimeRepository) Update(ctx context.Context, tx *entity.OneTimeTransaction) error {
	txModel := model.OneTimeTransactionFromEntity(tx)
	return r.db.WithContext(ctx).Save(txModel).Error
}

// Delete permanently removes a one-time transaction scoped by (id, userID).
func (r *oneTimeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.OneTimeTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOneTimeNotFound
	}
	return nil
}
