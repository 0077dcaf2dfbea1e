package summary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func withNormalized(category string, amount, normalized float64) CategoryItem {
	n := decimal.NewFromFloat(normalized)
	return CategoryItem{
		Category:         category,
		Amount:           decimal.NewFromFloat(amount),
		NormalizedAmount: &n,
	}
}

func TestAggregateByCategory(t *testing.T) {
	items := []CategoryItem{
		withNormalized("Housing", 1200, 1200),
		withNormalized("Housing", 300, 25), // yearly bill normalized down
		{Category: "Food", Amount: decimal.NewFromInt(80)},
		{Category: "Food", Amount: decimal.NewFromInt(45)},
		{Category: "food", Amount: decimal.NewFromInt(10)}, // case-sensitive, separate bucket
	}

	got := AggregateByCategory(items)

	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got))
	}

	housing := got["Housing"]
	if housing.Count != 2 {
		t.Errorf("Housing count = %d, want 2", housing.Count)
	}
	if !housing.TotalAmount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Housing total = %s, want 1500", housing.TotalAmount)
	}
	if !housing.TotalNormalizedAmount.Equal(decimal.NewFromInt(1225)) {
		t.Errorf("Housing normalized total = %s, want 1225", housing.TotalNormalizedAmount)
	}

	food := got["Food"]
	if food.Count != 2 || !food.TotalAmount.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Food = {count %d, total %s}, want {2, 125}", food.Count, food.TotalAmount)
	}
	if !food.TotalNormalizedAmount.IsZero() {
		t.Errorf("Food normalized total = %s, want 0", food.TotalNormalizedAmount)
	}

	if _, ok := got["food"]; !ok {
		t.Error("lower-case 'food' should be its own bucket")
	}
}

func TestAggregateByCategoryTotalInvariant(t *testing.T) {
	items := []CategoryItem{
		{Category: "A", Amount: decimal.NewFromFloat(0.1)},
		{Category: "B", Amount: decimal.NewFromFloat(0.2)},
		{Category: "A", Amount: decimal.NewFromFloat(0.3)},
		{Category: "C", Amount: decimal.NewFromFloat(0.4)},
	}

	inputSum := decimal.Zero
	for _, item := range items {
		inputSum = inputSum.Add(item.Amount)
	}

	aggregateSum := decimal.Zero
	for _, totals := range AggregateByCategory(items) {
		aggregateSum = aggregateSum.Add(totals.TotalAmount)
	}

	if !aggregateSum.Equal(inputSum) {
		t.Errorf("aggregate sum %s != input sum %s", aggregateSum, inputSum)
	}
}

func TestAggregateByCategoryEmpty(t *testing.T) {
	if got := AggregateByCategory(nil); len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestRankByTotal(t *testing.T) {
	totals := map[string]decimal.Decimal{
		"Food":      decimal.NewFromInt(300),
		"Housing":   decimal.NewFromInt(1200),
		"Transport": decimal.NewFromInt(300),
		"Fun":       decimal.NewFromInt(50),
	}
	counts := map[string]int{"Food": 4, "Housing": 1, "Transport": 2, "Fun": 1}

	ranked := RankByTotal(totals, counts)

	want := []string{"Housing", "Food", "Transport", "Fun"}
	for i, name := range want {
		if ranked[i].Category != name {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Category, name)
		}
	}
	if ranked[1].Count != 4 {
		t.Errorf("Food count = %d, want 4", ranked[1].Count)
	}
}
