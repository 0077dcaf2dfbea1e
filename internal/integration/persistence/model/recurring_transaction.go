// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table.
type RecurringTransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Frequency string          `gorm:"type:varchar(20);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Type:      entity.RecurringType(m.Type),
		Category:  m.Category,
		Frequency: entity.Frequency(m.Frequency),
		StartDate: m.StartDate,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a model from a domain entity.
func RecurringTransactionFromEntity(tx *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Name:      tx.Name,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Category:  tx.Category,
		Frequency: string(tx.Frequency),
		StartDate: tx.StartDate,
		IsActive:  tx.IsActive,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}
