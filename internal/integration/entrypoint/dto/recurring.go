package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for recurring transaction creation.
type CreateRecurringRequest struct {
	Name      string          `json:"name" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Type      string          `json:"type" binding:"required,oneof=BILL SUBSCRIPTION"`
	Category  string          `json:"category" binding:"required"`
	Frequency string          `json:"frequency" binding:"required,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	StartDate string          `json:"start_date" binding:"required"`
}

// UpdateRecurringRequest represents the request body for recurring transaction
// updates. Omitted fields are left unchanged.
type UpdateRecurringRequest struct {
	Name      *string          `json:"name,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Type      *string          `json:"type,omitempty" binding:"omitempty,oneof=BILL SUBSCRIPTION"`
	Category  *string          `json:"category,omitempty"`
	Frequency *string          `json:"frequency,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	StartDate *string          `json:"start_date,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

// RecurringResponse represents a single recurring transaction in API responses.
type RecurringResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Frequency string          `json:"frequency"`
	StartDate string          `json:"start_date"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// RecurringListResponse represents the response for listing recurring transactions.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// ToRecurringResponse converts a domain RecurringTransaction entity to a RecurringResponse DTO.
func ToRecurringResponse(tx *entity.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:        tx.ID.String(),
		Name:      tx.Name,
		Amount:    tx.Amount,
		Type:      string(tx.Type),
		Category:  tx.Category,
		Frequency: string(tx.Frequency),
		StartDate: tx.StartDate.Format(DateLayout),
		IsActive:  tx.IsActive,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

// ToRecurringListResponse converts a list of recurring transactions to a RecurringListResponse.
func ToRecurringListResponse(txs []*entity.RecurringTransaction) RecurringListResponse {
	responses := make([]RecurringResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToRecurringResponse(tx)
	}
	return RecurringListResponse{
		Recurring: responses,
	}
}
