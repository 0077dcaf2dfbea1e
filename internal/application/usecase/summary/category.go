// Package summary contains the monthly financial summary engine.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryItem is a priced line item feeding category aggregation. For
// recurring transactions NormalizedAmount carries the monthly-equivalent
// value; one-time items leave it nil.
type CategoryItem struct {
	Category         string
	Amount           decimal.Decimal
	NormalizedAmount *decimal.Decimal
}

// CategoryTotals accumulates per-category counts and sums. Original and
// normalized sums accumulate independently: a category can mix frequencies,
// so the normalized sum is not derivable by re-normalizing the original sum.
type CategoryTotals struct {
	Count                 int             `json:"count"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	TotalNormalizedAmount decimal.Decimal `json:"total_normalized_amount"`
}

// AggregateByCategory groups items by exact, case-sensitive category label.
// Callers supply clean labels; no trimming or case folding happens here.
// Map order carries no meaning: consumers that need ranking must sort
// explicitly (see RankByTotal).
func AggregateByCategory(items []CategoryItem) map[string]CategoryTotals {
	byCategory := make(map[string]CategoryTotals, len(items))

	for _, item := range items {
		totals := byCategory[item.Category]
		totals.Count++
		totals.TotalAmount = totals.TotalAmount.Add(item.Amount)
		if item.NormalizedAmount != nil {
			totals.TotalNormalizedAmount = totals.TotalNormalizedAmount.Add(*item.NormalizedAmount)
		}
		byCategory[item.Category] = totals
	}

	return byCategory
}

// RankedCategory is a category with its aggregate total, used for
// descending-by-total consumers (top category, top-5 chart bucketing).
type RankedCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// RankByTotal sorts category totals descending by total amount. Ties break
// alphabetically so the ranking is deterministic.
func RankByTotal(totals map[string]decimal.Decimal, counts map[string]int) []RankedCategory {
	ranked := make([]RankedCategory, 0, len(totals))
	for category, total := range totals {
		ranked = append(ranked, RankedCategory{
			Category: category,
			Total:    total,
			Count:    counts[category],
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Category < ranked[j].Category
	})

	return ranked
}
