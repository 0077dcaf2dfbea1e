// Package summary contains the monthly financial summary engine.
package summary

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// BuildMonthlySummaryInput represents the input for building a monthly summary.
type BuildMonthlySummaryInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// RecurringItem is a recurring transaction line with its monthly-equivalent amount.
type RecurringItem struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Type          entity.RecurringType `json:"type"`
	Category      string               `json:"category"`
	Frequency     entity.Frequency     `json:"frequency"`
	Amount        decimal.Decimal      `json:"amount"`
	MonthlyAmount decimal.Decimal      `json:"monthly_amount"`
}

// RecurringSummary aggregates the month's active recurring obligations.
type RecurringSummary struct {
	TotalBills         decimal.Decimal           `json:"total_bills"`
	TotalSubscriptions decimal.Decimal           `json:"total_subscriptions"`
	Total              decimal.Decimal           `json:"total"`
	Count              int                       `json:"count"`
	Bills              []RecurringItem           `json:"bills"`
	Subscriptions      []RecurringItem           `json:"subscriptions"`
	ByCategory         map[string]CategoryTotals `json:"by_category"`
}

// IncomeSource is an active income stream contributing to the month.
type IncomeSource struct {
	ID     uuid.UUID       `json:"id"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeSummary aggregates the user's active income streams. Income is a
// flat constant per active month; it is never pro-rated or normalized.
type IncomeSummary struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Sources []IncomeSource  `json:"sources"`
}

// OneTimeItem is a one-time expense falling inside the summarized month.
type OneTimeItem struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
}

// OneTimeSummary aggregates the month's one-time expenses.
type OneTimeSummary struct {
	Total        decimal.Decimal           `json:"total"`
	Count        int                       `json:"count"`
	Transactions []OneTimeItem             `json:"transactions"`
	ByCategory   map[string]CategoryTotals `json:"by_category"`
}

// CashFlowSummary is income minus all expenses for the period, before any
// savings set-aside.
type CashFlowSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// SavingsSummary overlays the user's savings goals on the period. Goals are
// evaluated against the current time, not the summarized month, and negative
// required contributions from overfunded goals are summed uncapped.
type SavingsSummary struct {
	TotalRequired  decimal.Decimal  `json:"total_required"`
	TotalAvailable decimal.Decimal  `json:"total_available"`
	Remaining      decimal.Decimal  `json:"remaining"`
	Goals          []GoalEvaluation `json:"goals"`
}

// MonthlySummary is the full monthly financial picture for one (month, year).
type MonthlySummary struct {
	Month     int              `json:"month"`
	Year      int              `json:"year"`
	Recurring RecurringSummary `json:"recurring"`
	Income    IncomeSummary    `json:"income"`
	OneTime   OneTimeSummary   `json:"one_time"`
	CashFlow  CashFlowSummary  `json:"cash_flow"`
	Savings   SavingsSummary   `json:"savings"`
}

// BuildMonthlySummaryUseCase derives a single consistent monthly snapshot
// from the user's raw financial records. The same computation backs the
// dashboard summary, analytics, exports and the can-I-spend check; given a
// fixed clock it is deterministic and idempotent.
type BuildMonthlySummaryUseCase struct {
	incomeRepo    adapter.IncomeRepository
	recurringRepo adapter.RecurringRepository
	oneTimeRepo   adapter.OneTimeRepository
	goalRepo      adapter.SavingsGoalRepository
	clock         adapter.Clock
}

// NewBuildMonthlySummaryUseCase creates a new BuildMonthlySummaryUseCase instance.
func NewBuildMonthlySummaryUseCase(
	incomeRepo adapter.IncomeRepository,
	recurringRepo adapter.RecurringRepository,
	oneTimeRepo adapter.OneTimeRepository,
	goalRepo adapter.SavingsGoalRepository,
	clock adapter.Clock,
) *BuildMonthlySummaryUseCase {
	return &BuildMonthlySummaryUseCase{
		incomeRepo:    incomeRepo,
		recurringRepo: recurringRepo,
		oneTimeRepo:   oneTimeRepo,
		goalRepo:      goalRepo,
		clock:         clock,
	}
}

// Execute builds the monthly summary. The four reads are independent and run
// concurrently; all must complete before any total is computed. Empty result
// sets yield exact zeros, never an error.
func (uc *BuildMonthlySummaryUseCase) Execute(ctx context.Context, input BuildMonthlySummaryInput) (*MonthlySummary, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}

	firstDay, lastDay := MonthBounds(input.Month, input.Year)

	var (
		incomes   []*entity.IncomeRecord
		recurring []*entity.RecurringTransaction
		oneTime   []*entity.OneTimeTransaction
		goals     []*entity.SavingsGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = uc.incomeRepo.FindActiveByUserID(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch income records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recurring, err = uc.recurringRepo.FindActiveStartedBy(gctx, input.UserID, lastDay)
		if err != nil {
			return fmt.Errorf("failed to fetch recurring transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		oneTime, err = uc.oneTimeRepo.FindByDateRange(gctx, input.UserID, firstDay, lastDay)
		if err != nil {
			return fmt.Errorf("failed to fetch one-time transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = uc.goalRepo.FindByUserID(gctx, input.UserID)
		if err != nil {
			return fmt.Errorf("failed to fetch savings goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	incomeSummary := buildIncomeSummary(incomes)
	recurringSummary := buildRecurringSummary(recurring)
	oneTimeSummary := buildOneTimeSummary(oneTime)

	totalExpenses := recurringSummary.Total.Add(oneTimeSummary.Total)
	netCashFlow := incomeSummary.Total.Sub(totalExpenses)

	return &MonthlySummary{
		Month:     input.Month,
		Year:      input.Year,
		Recurring: recurringSummary,
		Income:    incomeSummary,
		OneTime:   oneTimeSummary,
		CashFlow: CashFlowSummary{
			TotalIncome:   incomeSummary.Total,
			TotalExpenses: totalExpenses,
			NetCashFlow:   netCashFlow,
		},
		Savings: buildSavingsSummary(goals, netCashFlow, uc.clock.Now()),
	}, nil
}

// buildIncomeSummary sums active income records unconditionally. The record
// date is informational only and never windows the sum.
func buildIncomeSummary(incomes []*entity.IncomeRecord) IncomeSummary {
	total := decimal.Zero
	sources := make([]IncomeSource, 0, len(incomes))

	for _, income := range incomes {
		total = total.Add(income.Amount)
		sources = append(sources, IncomeSource{
			ID:     income.ID,
			Source: income.Source,
			Amount: income.Amount,
		})
	}

	return IncomeSummary{
		Total:   total,
		Count:   len(incomes),
		Sources: sources,
	}
}

// buildRecurringSummary normalizes each recurring transaction to its monthly
// equivalent, partitions bills from subscriptions, and aggregates categories
// across the combined set tracking both original and normalized sums.
func buildRecurringSummary(recurring []*entity.RecurringTransaction) RecurringSummary {
	totalBills := decimal.Zero
	totalSubscriptions := decimal.Zero
	bills := make([]RecurringItem, 0, len(recurring))
	subscriptions := make([]RecurringItem, 0)
	categoryItems := make([]CategoryItem, 0, len(recurring))

	for _, tx := range recurring {
		monthly := NormalizeToMonthly(tx.Amount, tx.Frequency)
		item := RecurringItem{
			ID:            tx.ID,
			Name:          tx.Name,
			Type:          tx.Type,
			Category:      tx.Category,
			Frequency:     tx.Frequency,
			Amount:        tx.Amount,
			MonthlyAmount: monthly,
		}

		if tx.Type == entity.RecurringTypeSubscription {
			totalSubscriptions = totalSubscriptions.Add(monthly)
			subscriptions = append(subscriptions, item)
		} else {
			totalBills = totalBills.Add(monthly)
			bills = append(bills, item)
		}

		normalized := monthly
		categoryItems = append(categoryItems, CategoryItem{
			Category:         tx.Category,
			Amount:           tx.Amount,
			NormalizedAmount: &normalized,
		})
	}

	return RecurringSummary{
		TotalBills:         totalBills,
		TotalSubscriptions: totalSubscriptions,
		Total:              totalBills.Add(totalSubscriptions),
		Count:              len(recurring),
		Bills:              bills,
		Subscriptions:      subscriptions,
		ByCategory:         AggregateByCategory(categoryItems),
	}
}

// buildOneTimeSummary sums the month's one-time expenses and aggregates
// categories on the original amounts; one-time items have no normalized variant.
func buildOneTimeSummary(oneTime []*entity.OneTimeTransaction) OneTimeSummary {
	total := decimal.Zero
	transactions := make([]OneTimeItem, 0, len(oneTime))
	categoryItems := make([]CategoryItem, 0, len(oneTime))

	for _, tx := range oneTime {
		total = total.Add(tx.Amount)
		transactions = append(transactions, OneTimeItem{
			ID:       tx.ID,
			Name:     tx.Name,
			Category: tx.Category,
			Amount:   tx.Amount,
			Date:     tx.Date,
		})
		categoryItems = append(categoryItems, CategoryItem{
			Category: tx.Category,
			Amount:   tx.Amount,
		})
	}

	return OneTimeSummary{
		Total:        total,
		Count:        len(oneTime),
		Transactions: transactions,
		ByCategory:   AggregateByCategory(categoryItems),
	}
}

// buildSavingsSummary evaluates every goal against now, sums the required
// contributions uncapped (overfunded goals subtract), and derives the cash
// left after savings set-aside. Goals are listed by target date ascending.
func buildSavingsSummary(goals []*entity.SavingsGoal, availableCash decimal.Decimal, now time.Time) SavingsSummary {
	totalRequired := decimal.Zero
	evaluations := make([]GoalEvaluation, 0, len(goals))

	for _, goal := range goals {
		evaluation := EvaluateGoal(goal, now)
		totalRequired = totalRequired.Add(evaluation.RequiredMonthlyContribution)
		evaluations = append(evaluations, evaluation)
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].Goal.TargetDate.Before(evaluations[j].Goal.TargetDate)
	})

	return SavingsSummary{
		TotalRequired:  totalRequired,
		TotalAvailable: availableCash,
		Remaining:      availableCash.Sub(totalRequired),
		Goals:          evaluations,
	}
}

// validatePeriod checks the month/year bounds enforced at the use-case boundary.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if year < 2000 || year > 2100 {
		return domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 2000 and 2100",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
