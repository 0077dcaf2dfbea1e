// Package summary contains the monthly financial summary engine.
package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

// GoalStatus classifies the health of a savings goal. It is a heuristic risk
// classifier, not a guarantee.
type GoalStatus string

const (
	GoalStatusOnTrack GoalStatus = "on-track"
	GoalStatusTight   GoalStatus = "tight"
	GoalStatusAtRisk  GoalStatus = "at-risk"
)

// Fixed policy constants for goal classification.
var (
	// fundedProgressPct: at or above this progress the goal is on-track
	// regardless of time remaining.
	fundedProgressPct = decimal.NewFromInt(100)

	// atRiskMonthlyPct: required monthly progress above this is at-risk.
	atRiskMonthlyPct = decimal.NewFromInt(15)

	// tightMonthlyPct: required monthly progress above this (and at or below
	// atRiskMonthlyPct) is tight.
	tightMonthlyPct = decimal.NewFromInt(8)
)

// GoalEvaluation is the point-in-time health assessment of a savings goal.
type GoalEvaluation struct {
	Goal *entity.SavingsGoal

	// ProgressPercentage is current/target*100, uncapped; it exceeds 100 when
	// the goal is overfunded.
	ProgressPercentage decimal.Decimal

	// MonthsRemaining is the whole-month count until the target date based on
	// calendar month difference only; day-of-month is ignored. Never negative.
	MonthsRemaining int

	// RequiredMonthlyContribution is (target-current)/monthsRemaining, 0 when
	// no months remain. Negative when overfunded; the overfund signal is
	// deliberately not clamped.
	RequiredMonthlyContribution decimal.Decimal

	Status GoalStatus
}

// EvaluateGoal computes progress, the months remaining until the target date
// and the even monthly contribution required to hit the target, then
// classifies goal health. Evaluation is relative to now, not to any
// summarized month: two requests on different days may legitimately report
// different values for the same goal.
func EvaluateGoal(goal *entity.SavingsGoal, now time.Time) GoalEvaluation {
	progress := goal.CurrentAmount.Div(goal.TargetAmount).Mul(fundedProgressPct)

	monthsRemaining := (goal.TargetDate.Year()-now.Year())*12 +
		int(goal.TargetDate.Month()) - int(now.Month())
	if monthsRemaining < 0 {
		monthsRemaining = 0
	}

	required := decimal.Zero
	if monthsRemaining > 0 {
		required = goal.TargetAmount.Sub(goal.CurrentAmount).
			Div(decimal.NewFromInt(int64(monthsRemaining)))
	}

	return GoalEvaluation{
		Goal:                        goal,
		ProgressPercentage:          progress,
		MonthsRemaining:             monthsRemaining,
		RequiredMonthlyContribution: required,
		Status:                      classifyGoal(progress, monthsRemaining),
	}
}

// classifyGoal applies the status rules in order: fully funded goals are
// on-track, goals whose deadline is this month or past are at-risk, and
// otherwise the required monthly progress decides between at-risk, tight and
// on-track.
func classifyGoal(progress decimal.Decimal, monthsRemaining int) GoalStatus {
	if progress.GreaterThanOrEqual(fundedProgressPct) {
		return GoalStatusOnTrack
	}
	if monthsRemaining <= 0 {
		return GoalStatusAtRisk
	}

	requiredMonthlyPct := fundedProgressPct.Sub(progress).
		Div(decimal.NewFromInt(int64(monthsRemaining)))
	switch {
	case requiredMonthlyPct.GreaterThan(atRiskMonthlyPct):
		return GoalStatusAtRisk
	case requiredMonthlyPct.GreaterThan(tightMonthlyPct):
		return GoalStatusTight
	default:
		return GoalStatusOnTrack
	}
}
