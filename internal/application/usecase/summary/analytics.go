// Package summary contains the monthly financial summary engine.
package summary

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-pilot/backend/internal/application/adapter"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

const (
	// maxConcurrentMonthBuilds caps the fan-out of per-month builds so a
	// 12-month window cannot exhaust the store's connection pool.
	maxConcurrentMonthBuilds = 12

	// topCategoryCount is how many ranked categories the chart keeps before
	// collapsing the rest into the "Other" bucket.
	topCategoryCount = 5
)

// OtherCategoryLabel is the synthetic bucket holding every category beyond
// the top ranks in chart output.
const OtherCategoryLabel = "Other"

// GetAnalyticsInput represents the input for the analytics window.
type GetAnalyticsInput struct {
	UserID     uuid.UUID
	MonthsBack int // 3, 6 or 12
}

// GetAnalyticsOutput bundles the per-month summaries with the cross-month
// category ranking.
type GetAnalyticsOutput struct {
	Months []*MonthlySummary `json:"months"`

	// Categories is the full ranked list, descending by total spend across
	// the window (normalized recurring plus one-time, unified per category).
	Categories []RankedCategory `json:"categories"`

	// ChartCategories is the top-5 plus an "Other" bucket for chart rendering.
	ChartCategories []RankedCategory `json:"chart_categories"`
}

// GetAnalyticsUseCase builds summaries over a trailing month window and
// derives category trends. Each month is computed fresh with no cross-month
// sharing; N months of fetching scale linearly with N, an accepted tradeoff
// favoring clarity over a single wide query.
type GetAnalyticsUseCase struct {
	builder *BuildMonthlySummaryUseCase
	clock   adapter.Clock
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(builder *BuildMonthlySummaryUseCase, clock adapter.Clock) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		builder: builder,
		clock:   clock,
	}
}

// Execute builds the trailing-N window ending at the current calendar month,
// oldest first, and merges per-month category maps into a unified running
// total per category.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if input.MonthsBack != 3 && input.MonthsBack != 6 && input.MonthsBack != 12 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonthsBack,
			"months back must be 3, 6 or 12",
			domainerror.ErrInvalidMonthsBack,
		)
	}

	months := LastNMonths(input.MonthsBack, uc.clock.Now())
	summaries := make([]*MonthlySummary, len(months))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMonthBuilds)
	for i, ref := range months {
		g.Go(func() error {
			built, err := uc.builder.Execute(gctx, BuildMonthlySummaryInput{
				UserID: input.UserID,
				Month:  ref.Month,
				Year:   ref.Year,
			})
			if err != nil {
				return err
			}
			summaries[i] = built
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := rankWindowCategories(summaries)

	return &GetAnalyticsOutput{
		Months:          summaries,
		Categories:      ranked,
		ChartCategories: bucketTopCategories(ranked),
	}, nil
}

// rankWindowCategories merges each month's recurring (normalized) and
// one-time (original) category sums into one total per category across the
// window, then ranks descending. Analytics want total spend per category,
// not the per-month original/normalized split.
func rankWindowCategories(summaries []*MonthlySummary) []RankedCategory {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, s := range summaries {
		for category, agg := range s.Recurring.ByCategory {
			totals[category] = totals[category].Add(agg.TotalNormalizedAmount)
			counts[category] += agg.Count
		}
		for category, agg := range s.OneTime.ByCategory {
			totals[category] = totals[category].Add(agg.TotalAmount)
			counts[category] += agg.Count
		}
	}

	return RankByTotal(totals, counts)
}

// bucketTopCategories keeps the top ranked categories and collapses the rest
// into a synthetic "Other" bucket for chart rendering.
func bucketTopCategories(ranked []RankedCategory) []RankedCategory {
	if len(ranked) <= topCategoryCount {
		return ranked
	}

	chart := make([]RankedCategory, topCategoryCount, topCategoryCount+1)
	copy(chart, ranked[:topCategoryCount])

	other := RankedCategory{Category: OtherCategoryLabel, Total: decimal.Zero}
	for _, rc := range ranked[topCategoryCount:] {
		other.Total = other.Total.Add(rc.Total)
		other.Count += rc.Count
	}

	return append(chart, other)
}
