// Package export projects summaries and raw records into flat tabular rows
// and encodes them as CSV or XLSX downloads.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/application/usecase/summary"
	"github.com/budget-pilot/backend/internal/domain/entity"
)

// Column headers per section. Order is load-bearing: the spreadsheet
// formulas in xlsx.go address columns by position.
var (
	monthlySummaryHeader = []string{"Month", "Year", "Income", "Recurring Expenses", "One-time Expenses", "Total Expenses", "Savings Required", "Remaining Cash"}
	recurringHeader      = []string{"Name", "Type", "Category", "Frequency", "Amount", "Monthly Amount", "Status"}
	oneTimeHeader        = []string{"Name", "Category", "Amount", "Date"}
	incomeHeader         = []string{"Source", "Amount", "Date", "Status"}
)

const dateLayout = "2006-01-02"

// MonthlySummaryRow is one month of the summary export.
type MonthlySummaryRow struct {
	Month           int
	Year            int
	Income          decimal.Decimal
	Recurring       decimal.Decimal
	OneTime         decimal.Decimal
	TotalExpenses   decimal.Decimal
	SavingsRequired decimal.Decimal
	RemainingCash   decimal.Decimal
}

// RecurringRow is one recurring transaction in the export, full history
// independent of month windowing.
type RecurringRow struct {
	Name          string
	Type          string
	Category      string
	Frequency     string
	Amount        decimal.Decimal
	MonthlyAmount decimal.Decimal
	Status        string
}

// OneTimeRow is one one-time transaction in the export.
type OneTimeRow struct {
	Name     string
	Category string
	Amount   decimal.Decimal
	Date     string
}

// IncomeRow is one income record in the export.
type IncomeRow struct {
	Source string
	Amount decimal.Decimal
	Date   string
	Status string
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func monthlySummaryRows(summaries []*summary.MonthlySummary) []MonthlySummaryRow {
	rows := make([]MonthlySummaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, MonthlySummaryRow{
			Month:           s.Month,
			Year:            s.Year,
			Income:          s.Income.Total,
			Recurring:       s.Recurring.Total,
			OneTime:         s.OneTime.Total,
			TotalExpenses:   s.CashFlow.TotalExpenses,
			SavingsRequired: s.Savings.TotalRequired,
			RemainingCash:   s.Savings.Remaining,
		})
	}
	return rows
}

func recurringRows(txs []*entity.RecurringTransaction) []RecurringRow {
	rows := make([]RecurringRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, RecurringRow{
			Name:          tx.Name,
			Type:          string(tx.Type),
			Category:      tx.Category,
			Frequency:     string(tx.Frequency),
			Amount:        tx.Amount,
			MonthlyAmount: summary.NormalizeToMonthly(tx.Amount, tx.Frequency),
			Status:        statusLabel(tx.IsActive),
		})
	}
	return rows
}

func oneTimeRows(txs []*entity.OneTimeTransaction) []OneTimeRow {
	rows := make([]OneTimeRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, OneTimeRow{
			Name:     tx.Name,
			Category: tx.Category,
			Amount:   tx.Amount,
			Date:     tx.Date.Format(dateLayout),
		})
	}
	return rows
}

func incomeRows(incomes []*entity.IncomeRecord) []IncomeRow {
	rows := make([]IncomeRow, 0, len(incomes))
	for _, inc := range incomes {
		rows = append(rows, IncomeRow{
			Source: inc.Source,
			Amount: inc.Amount,
			Date:   inc.Date.Format(dateLayout),
			Status: statusLabel(inc.IsActive),
		})
	}
	return rows
}
