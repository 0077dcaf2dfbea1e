package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// CreateSavingsGoalRequest represents the request body for savings goal creation.
type CreateSavingsGoalRequest struct {
	Name          string           `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal  `json:"target_amount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    string           `json:"target_date" binding:"required"`
}

// UpdateSavingsGoalRequest represents the request body for savings goal
// updates. Omitted fields are left unchanged.
type UpdateSavingsGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    *string          `json:"target_date,omitempty"`
}

// SavingsGoalResponse represents a single savings goal in API responses.
type SavingsGoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals []SavingsGoalResponse `json:"goals"`
}

// ToSavingsGoalResponse converts a domain SavingsGoal entity to a SavingsGoalResponse DTO.
func ToSavingsGoalResponse(goal *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:            goal.ID.String(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format(DateLayout),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}

// ToSavingsGoalListResponse converts a list of savings goals to a SavingsGoalListResponse.
func ToSavingsGoalListResponse(goals []*entity.SavingsGoal) SavingsGoalListResponse {
	responses := make([]SavingsGoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToSavingsGoalResponse(goal)
	}
	return SavingsGoalListResponse{
		Goals: responses,
	}
}
