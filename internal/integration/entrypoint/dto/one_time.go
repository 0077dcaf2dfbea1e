package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// CreateOneTimeRequest represents the request body for one-time transaction creation.
type CreateOneTimeRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Date     string          `json:"date" binding:"required"`
}

// UpdateOneTimeRequest represents the request body for one-time transaction
// updates. Omitted fields are left unchanged.
type UpdateOneTimeRequest struct {
	Name     *string          `json:"name,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
}

// OneTimeResponse represents a single one-time transaction in API responses.
type OneTimeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OneTimeListResponse represents the response for listing one-time transactions.
type OneTimeListResponse struct {
	Transactions []OneTimeResponse `json:"transactions"`
}

// ToOneTimeResponse converts a domain OneTimeTransaction entity to a OneTimeResponse DTO.
func ToOneTimeResponse(tx *entity.OneTimeTransaction) OneTimeResponse {
	return OneTimeResponse{
		ID:        tx.ID.String(),
		Name:      tx.Name,
		Amount:    tx.Amount,
		Category:  tx.Category,
		Date:      tx.Date.Format(DateLayout),
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

// ToOneTimeListResponse converts a list of one-time transactions to a OneTimeListResponse.
func ToOneTimeListResponse(txs []*entity.OneTimeTransaction) OneTimeListResponse {
	responses := make([]OneTimeResponse, len(txs))
	for i, tx := range txs {
		responses[i] = ToOneTimeResponse(tx)
	}
	return OneTimeListResponse{
		Transactions: responses,
	}
}
