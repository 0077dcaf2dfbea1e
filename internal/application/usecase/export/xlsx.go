package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names. The cross-sheet formulas on the full export's Monthly Summary
// sheet reference these literally.
const (
	sheetMonthlySummary = "Monthly Summary"
	sheetRecurring      = "Recurring"
	sheetOneTime        = "One-Time"
	sheetIncome         = "Income"
)

// setMoneyCell writes an exact decimal string as a numeric cell. Going
// through SetCellDefault keeps binary floating point out of the workbook.
func setMoneyCell(f *excelize.File, sheet, cell, value string) error {
	return f.SetCellDefault(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, header []string) error {
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}
	return nil
}

func sumFormula(col string, off RowOffsets) string {
	return fmt.Sprintf("SUM(%s%d:%s%d)", col, off.FirstDataRow, col, off.LastDataRow)
}

func averageFormula(col string, off RowOffsets) string {
	return fmt.Sprintf("AVERAGE(%s%d:%s%d)", col, off.FirstDataRow, col, off.LastDataRow)
}

// writeMonthlySummarySheet lays out one row per month with SUM totals and
// AVERAGE rows. When crossSheet is set (full export), two extra rows pull
// the active income and active recurring totals from their own sheets.
func writeMonthlySummarySheet(f *excelize.File, rows []MonthlySummaryRow, crossSheet bool, recurringLen, incomeLen int) error {
	if err := writeHeader(f, sheetMonthlySummary, monthlySummaryHeader); err != nil {
		return err
	}

	off := RowOffsetsFor(len(rows))
	for i, r := range rows {
		rowNum := off.FirstDataRow + i
		if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("A%d", rowNum), r.Month); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("B%d", rowNum), r.Year); err != nil {
			return err
		}
		money := []string{
			r.Income.Round(2).String(),
			r.Recurring.Round(2).String(),
			r.OneTime.Round(2).String(),
			r.TotalExpenses.Round(2).String(),
			r.SavingsRequired.Round(2).String(),
			r.RemainingCash.Round(2).String(),
		}
		for j, v := range money {
			cell, err := excelize.CoordinatesToCellName(j+3, rowNum)
			if err != nil {
				return err
			}
			if err := setMoneyCell(f, sheetMonthlySummary, cell, v); err != nil {
				return err
			}
		}
	}

	// With zero data rows the SUM/AVERAGE ranges would be inverted
	// (e.g. C2:C1), so an empty section stays header-only.
	if len(rows) == 0 {
		return nil
	}

	if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("A%d", off.TotalsRow), "Totals"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("A%d", off.AveragesRow), "Averages"); err != nil {
		return err
	}
	for _, col := range []string{"C", "D", "E", "F", "G", "H"} {
		if err := f.SetCellFormula(sheetMonthlySummary, fmt.Sprintf("%s%d", col, off.TotalsRow), sumFormula(col, off)); err != nil {
			return err
		}
		if err := f.SetCellFormula(sheetMonthlySummary, fmt.Sprintf("%s%d", col, off.AveragesRow), averageFormula(col, off)); err != nil {
			return err
		}
	}

	if !crossSheet {
		return nil
	}

	incomeOff := RowOffsetsFor(incomeLen)
	recurringOff := RowOffsetsFor(recurringLen)

	// Cross-sheet rows only make sense when the referenced sheet carries
	// data; an empty sheet has no summary cells to point at.
	if incomeLen > 0 {
		activeIncomeRow := off.AveragesRow + 1
		if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("A%d", activeIncomeRow), "Active Income"); err != nil {
			return err
		}
		// The Income sheet keeps its SUMIF active total on its averages row.
		if err := f.SetCellFormula(sheetMonthlySummary, fmt.Sprintf("B%d", activeIncomeRow),
			fmt.Sprintf("'%s'!B%d", sheetIncome, incomeOff.AveragesRow)); err != nil {
			return err
		}
	}

	if recurringLen > 0 {
		activeRecurringRow := off.AveragesRow + 2
		if err := f.SetCellValue(sheetMonthlySummary, fmt.Sprintf("A%d", activeRecurringRow), "Active Recurring (Monthly)"); err != nil {
			return err
		}
		if err := f.SetCellFormula(sheetMonthlySummary, fmt.Sprintf("B%d", activeRecurringRow),
			fmt.Sprintf("SUMIF('%s'!G%d:G%d,\"Active\",'%s'!F%d:F%d)",
				sheetRecurring, recurringOff.FirstDataRow, recurringOff.LastDataRow,
				sheetRecurring, recurringOff.FirstDataRow, recurringOff.LastDataRow)); err != nil {
			return err
		}
	}

	return nil
}

func writeRecurringSheet(f *excelize.File, rows []RecurringRow) error {
	if err := writeHeader(f, sheetRecurring, recurringHeader); err != nil {
		return err
	}

	off := RowOffsetsFor(len(rows))
	for i, r := range rows {
		rowNum := off.FirstDataRow + i
		text := map[string]string{"A": r.Name, "B": r.Type, "C": r.Category, "D": r.Frequency, "G": r.Status}
		for col, v := range text {
			if err := f.SetCellValue(sheetRecurring, fmt.Sprintf("%s%d", col, rowNum), v); err != nil {
				return err
			}
		}
		if err := setMoneyCell(f, sheetRecurring, fmt.Sprintf("E%d", rowNum), r.Amount.Round(2).String()); err != nil {
			return err
		}
		if err := setMoneyCell(f, sheetRecurring, fmt.Sprintf("F%d", rowNum), r.MonthlyAmount.Round(2).String()); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}

	if err := f.SetCellValue(sheetRecurring, fmt.Sprintf("A%d", off.TotalsRow), "Totals"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetRecurring, fmt.Sprintf("A%d", off.AveragesRow), "Averages"); err != nil {
		return err
	}
	for _, col := range []string{"E", "F"} {
		if err := f.SetCellFormula(sheetRecurring, fmt.Sprintf("%s%d", col, off.TotalsRow), sumFormula(col, off)); err != nil {
			return err
		}
		if err := f.SetCellFormula(sheetRecurring, fmt.Sprintf("%s%d", col, off.AveragesRow), averageFormula(col, off)); err != nil {
			return err
		}
	}
	// Active count on the totals row under the Status column.
	if err := f.SetCellFormula(sheetRecurring, fmt.Sprintf("G%d", off.TotalsRow),
		fmt.Sprintf("COUNTIF(G%d:G%d,\"Active\")", off.FirstDataRow, off.LastDataRow)); err != nil {
		return err
	}

	return nil
}

func writeOneTimeSheet(f *excelize.File, rows []OneTimeRow) error {
	if err := writeHeader(f, sheetOneTime, oneTimeHeader); err != nil {
		return err
	}

	off := RowOffsetsFor(len(rows))
	for i, r := range rows {
		rowNum := off.FirstDataRow + i
		if err := f.SetCellValue(sheetOneTime, fmt.Sprintf("A%d", rowNum), r.Name); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetOneTime, fmt.Sprintf("B%d", rowNum), r.Category); err != nil {
			return err
		}
		if err := setMoneyCell(f, sheetOneTime, fmt.Sprintf("C%d", rowNum), r.Amount.Round(2).String()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetOneTime, fmt.Sprintf("D%d", rowNum), r.Date); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}

	if err := f.SetCellValue(sheetOneTime, fmt.Sprintf("A%d", off.TotalsRow), "Totals"); err != nil {
		return err
	}
	if err := f.SetCellFormula(sheetOneTime, fmt.Sprintf("C%d", off.TotalsRow), sumFormula("C", off)); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetOneTime, fmt.Sprintf("A%d", off.AveragesRow), "Averages"); err != nil {
		return err
	}
	return f.SetCellFormula(sheetOneTime, fmt.Sprintf("C%d", off.AveragesRow), averageFormula("C", off))
}

func writeIncomeSheet(f *excelize.File, rows []IncomeRow) error {
	if err := writeHeader(f, sheetIncome, incomeHeader); err != nil {
		return err
	}

	off := RowOffsetsFor(len(rows))
	for i, r := range rows {
		rowNum := off.FirstDataRow + i
		if err := f.SetCellValue(sheetIncome, fmt.Sprintf("A%d", rowNum), r.Source); err != nil {
			return err
		}
		if err := setMoneyCell(f, sheetIncome, fmt.Sprintf("B%d", rowNum), r.Amount.Round(2).String()); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetIncome, fmt.Sprintf("C%d", rowNum), r.Date); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetIncome, fmt.Sprintf("D%d", rowNum), r.Status); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}

	if err := f.SetCellValue(sheetIncome, fmt.Sprintf("A%d", off.TotalsRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellFormula(sheetIncome, fmt.Sprintf("B%d", off.TotalsRow), sumFormula("B", off)); err != nil {
		return err
	}
	// The averages slot carries the active-only SUMIF; the full export's
	// Monthly Summary sheet references this cell.
	if err := f.SetCellValue(sheetIncome, fmt.Sprintf("A%d", off.AveragesRow), "Active Total"); err != nil {
		return err
	}
	return f.SetCellFormula(sheetIncome, fmt.Sprintf("B%d", off.AveragesRow),
		fmt.Sprintf("SUMIF(D%d:D%d,\"Active\",B%d:B%d)",
			off.FirstDataRow, off.LastDataRow, off.FirstDataRow, off.LastDataRow))
}

// encodeXLSX builds the workbook for the requested sections. The first
// requested sheet replaces excelize's default Sheet1.
func encodeXLSX(sections []string, build func(f *excelize.File) error) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if len(sections) == 0 {
		return nil, fmt.Errorf("no sheets to write")
	}
	if err := f.SetSheetName("Sheet1", sections[0]); err != nil {
		return nil, err
	}
	for _, name := range sections[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	if err := build(f); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
