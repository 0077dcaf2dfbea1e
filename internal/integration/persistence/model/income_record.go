// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// IncomeRecordModel represents the income_records table in the database.
// Amount maps to an exact decimal column; no float64 touches money.
type IncomeRecordModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Source    string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date      time.Time       `gorm:"type:date;not null"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeRecordModel.
func (IncomeRecordModel) TableName() string {
	return "income_records"
}

// ToEntity converts an IncomeRecordModel to a domain IncomeRecord entity.
func (m *IncomeRecordModel) ToEntity() *entity.IncomeRecord {
	return &entity.IncomeRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Source:    m.Source,
		Amount:    m.Amount,
		Date:      m.Date,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeRecordFromEntity creates an IncomeRecordModel from a domain entity.
func IncomeRecordFromEntity(income *entity.IncomeRecord) *IncomeRecordModel {
	return &IncomeRecordModel{
		ID:        income.ID,
		UserID:    income.UserID,
		Source:    income.Source,
		Amount:    income.Amount,
		Date:      income.Date,
		IsActive:  income.IsActive,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}
