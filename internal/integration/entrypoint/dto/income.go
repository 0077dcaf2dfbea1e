package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// DateLayout is the wire format for calendar dates in requests and responses.
const DateLayout = "2006-01-02"

// CreateIncomeRequest represents the request body for income record creation.
type CreateIncomeRequest struct {
	Source   string          `json:"source" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required"`
	IsActive *bool           `json:"is_active,omitempty"`
}

// UpdateIncomeRequest represents the request body for income record updates.
// Omitted fields are left unchanged.
type UpdateIncomeRequest struct {
	Source   *string          `json:"source,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

// ToggleRequest represents the request body for status toggle endpoints.
type ToggleRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// IncomeResponse represents a single income record in API responses.
type IncomeResponse struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IncomeListResponse represents the response for listing income records.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain IncomeRecord entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.IncomeRecord) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID.String(),
		Source:    income.Source,
		Amount:    income.Amount,
		Date:      income.Date.Format(DateLayout),
		IsActive:  income.IsActive,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}

// ToIncomeListResponse converts a list of income records to an IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.IncomeRecord) IncomeListResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = ToIncomeResponse(income)
	}
	return IncomeListResponse{
		Incomes: responses,
	}
}
