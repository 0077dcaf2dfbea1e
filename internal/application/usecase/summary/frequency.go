// Package summary contains the monthly financial summary engine.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
)

var (
	daysPerYear   = decimal.NewFromInt(365)
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

// NormalizeToMonthly converts an amount paid at the given cadence into its
// monthly-equivalent value for apples-to-apples aggregation:
//
//	DAILY   amount * 365 / 12
//	WEEKLY  amount * 52 / 12
//	YEARLY  amount / 12
//	MONTHLY amount unchanged
//
// An unrecognized frequency degrades to identity. This is a silent-fallback
// policy, not a validation layer: request validation rejects unknown
// frequencies before any amount reaches this function.
//
// Division keeps the decimal package's full internal precision; rounding to
// two places happens only at the display/serialization boundary.
func NormalizeToMonthly(amount decimal.Decimal, frequency entity.Frequency) decimal.Decimal {
	switch frequency {
	case entity.FrequencyDaily:
		return amount.Mul(daysPerYear).Div(monthsPerYear)
	case entity.FrequencyWeekly:
		return amount.Mul(weeksPerYear).Div(monthsPerYear)
	case entity.FrequencyYearly:
		return amount.Div(monthsPerYear)
	default:
		return amount
	}
}
