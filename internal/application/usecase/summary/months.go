// Package summary contains the monthly financial summary engine.
package summary

import "time"

// MonthRef identifies a calendar month.
type MonthRef struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// MonthBounds returns the first and last day of the given calendar month,
// both at midnight UTC. The one-time transaction window is
// [first, last] inclusive.
func MonthBounds(month, year int) (first, last time.Time) {
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// MonthsInRange generates the ordered list of months from (startMonth,
// startYear) to (endMonth, endYear) inclusive, incrementing the month and
// rolling the year. A start chronologically after the end yields an empty
// list; callers reject that upstream as a validation error.
func MonthsInRange(startMonth, startYear, endMonth, endYear int) []MonthRef {
	var months []MonthRef

	month, year := startMonth, startYear
	for year < endYear || (year == endYear && month <= endMonth) {
		months = append(months, MonthRef{Month: month, Year: year})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return months
}

// LastNMonths generates the n months ending at the calendar month containing
// now, oldest first.
func LastNMonths(n int, now time.Time) []MonthRef {
	months := make([]MonthRef, 0, n)

	for i := n - 1; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -i, 0)
		months = append(months, MonthRef{
			Month: int(anchor.Month()),
			Year:  anchor.Year(),
		})
	}

	return months
}
