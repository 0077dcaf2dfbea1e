package summary

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

func testGoal(target, current int64, targetDate time.Time) *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Name:          "test goal",
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.NewFromInt(current),
		TargetDate:    targetDate,
	}
}

func TestEvaluateGoal(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		goal             *entity.SavingsGoal
		wantMonths       int
		wantRequired     decimal.Decimal
		wantStatus       GoalStatus
	}{
		{
			name:         "linear contribution over remaining months",
			goal:         testGoal(100000, 65000, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   10,
			wantRequired: decimal.NewFromInt(3500),
			wantStatus:   GoalStatusOnTrack, // (100-65)/10 = 3.5 <= 8
		},
		{
			name:         "fully funded goal is on-track regardless of deadline",
			goal:         testGoal(5000, 5000, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   0,
			wantRequired: decimal.Zero,
			wantStatus:   GoalStatusOnTrack,
		},
		{
			name:         "overfunded goal produces negative contribution, still on-track",
			goal:         testGoal(1000, 1500, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   5,
			wantRequired: decimal.NewFromInt(-100),
			wantStatus:   GoalStatusOnTrack,
		},
		{
			name:         "deadline in current month with incomplete progress is at-risk",
			goal:         testGoal(10000, 4000, time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)),
			wantMonths:   0,
			wantRequired: decimal.Zero,
			wantStatus:   GoalStatusAtRisk,
		},
		{
			name:         "deadline in the past is at-risk with zero months remaining",
			goal:         testGoal(10000, 4000, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   0,
			wantRequired: decimal.Zero,
			wantStatus:   GoalStatusAtRisk,
		},
		{
			name:         "required monthly progress above 15 percent is at-risk",
			goal:         testGoal(10000, 0, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   5,
			wantRequired: decimal.NewFromInt(2000),
			wantStatus:   GoalStatusAtRisk, // 100/5 = 20 > 15
		},
		{
			name:         "required monthly progress between 8 and 15 percent is tight",
			goal:         testGoal(10000, 0, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   10,
			wantRequired: decimal.NewFromInt(1000),
			wantStatus:   GoalStatusTight, // 100/10 = 10
		},
		{
			name:         "day of month is ignored in the month count",
			goal:         testGoal(12000, 0, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)),
			wantMonths:   1,
			wantRequired: decimal.NewFromInt(12000),
			wantStatus:   GoalStatusAtRisk, // 100/1 = 100 > 15
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateGoal(tt.goal, now)

			if got.MonthsRemaining != tt.wantMonths {
				t.Errorf("MonthsRemaining = %d, want %d", got.MonthsRemaining, tt.wantMonths)
			}
			if !got.RequiredMonthlyContribution.Equal(tt.wantRequired) {
				t.Errorf("RequiredMonthlyContribution = %s, want %s",
					got.RequiredMonthlyContribution, tt.wantRequired)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestEvaluateGoalProgressUncapped(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	goal := testGoal(1000, 1500, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC))

	got := EvaluateGoal(goal, now)
	if !got.ProgressPercentage.Equal(decimal.NewFromInt(150)) {
		t.Errorf("ProgressPercentage = %s, want 150", got.ProgressPercentage)
	}
}
