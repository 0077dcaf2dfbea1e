// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// OneTimeTransactionModel represents the one_time_transactions table.
type OneTimeTransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Date      time.Time       `gorm:"type:date;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OneTimeTransactionModel.
func (OneTimeTransactionModel) TableName() string {
	return "one_time_transactions"
}

// ToEntity converts a OneTimeTransactionModel to a domain entity.
func (m *OneTimeTransactionModel) ToEntity() *entity.OneTimeTransaction {
	return &entity.OneTimeTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Category:  m.Category,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// OneTimeTransactionFromEntity creates a model from a domain entity.
func OneTimeTransactionFromEntity(tx *entity.OneTimeTransaction) *OneTimeTransactionModel {
	return &OneTimeTransactionModel{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Name:      tx.Name,
		Amount:    tx.Amount,
		Category:  tx.Category,
		Date:      tx.Date,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}
