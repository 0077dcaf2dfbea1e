// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
	"github.com/budget-pilot/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income record in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.IncomeRecord) error {
	incomeModel := model.IncomeRecordFromEntity(income)
	return r.db.WithContext(ctx).Create(incomeModel).Error
}

// FindByID retrieves an income record scoped by (id, userID). A record owned
// by another user is reported as not found.
func (r *incomeRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.IncomeRecord, error) {
	var incomeModel model.IncomeRecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByUserID retrieves all income records for a given user.
func (r *incomeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error) {
	var incomeModels []model.IncomeRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.IncomeRecord, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// FindActiveByUserID retrieves income records with is_active=true for a user.
func (r *incomeRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error) {
	var incomeModels []model.IncomeRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("date DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.IncomeRecord, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// Update updates an existing income record in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.IncomeRecord) error {
	incomeModel := model.IncomeRecordFromEntity(income)
	return r.db.WithContext(ctx).Save(incomeModel).Error
}

// Delete permanently removes an income record scoped by (id, userID).
func (r *incomeRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.IncomeRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}
