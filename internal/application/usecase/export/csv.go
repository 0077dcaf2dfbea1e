package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// csvSection is one titled block of a CSV export. Single-type exports emit
// exactly one untitled section; the full export emits four titled ones
// separated by blank lines.
type csvSection struct {
	title  string
	header []string
	rows   [][]string
}

func encodeCSV(sections []csvSection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for i, section := range sections {
		if i > 0 {
			// Blank separator line between sections.
			w.Flush()
			buf.WriteString("\n")
		}
		if section.title != "" {
			if err := w.Write([]string{section.title}); err != nil {
				return nil, fmt.Errorf("failed to write section title: %w", err)
			}
		}
		if err := w.Write(section.header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		for _, row := range section.rows {
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func monthlySummaryCSVRows(rows []MonthlySummaryRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Year),
			r.Income.Round(2).String(),
			r.Recurring.Round(2).String(),
			r.OneTime.Round(2).String(),
			r.TotalExpenses.Round(2).String(),
			r.SavingsRequired.Round(2).String(),
			r.RemainingCash.Round(2).String(),
		})
	}
	return out
}

func recurringCSVRows(rows []RecurringRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Name,
			r.Type,
			r.Category,
			r.Frequency,
			r.Amount.Round(2).String(),
			r.MonthlyAmount.Round(2).String(),
			r.Status,
		})
	}
	return out
}

func oneTimeCSVRows(rows []OneTimeRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Name,
			r.Category,
			r.Amount.Round(2).String(),
			r.Date,
		})
	}
	return out
}

func incomeCSVRows(rows []IncomeRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Source,
			r.Amount.Round(2).String(),
			r.Date,
			r.Status,
		})
	}
	return out
}
