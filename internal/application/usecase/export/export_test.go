package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/budget-pilot/backend/internal/application/usecase/summary"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeIncomeRepo struct {
	records []*entity.IncomeRecord
}

func (r *fakeIncomeRepo) Create(_ context.Context, income *entity.IncomeRecord) error {
	r.records = append(r.records, income)
	return nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.IncomeRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeIncomeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error) {
	var out []*entity.IncomeRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.IncomeRecord, error) {
	var out []*entity.IncomeRecord
	for _, rec := range r.records {
		if rec.UserID == userID && rec.IsActive {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) Update(_ context.Context, _ *entity.IncomeRecord) error { return nil }
func (r *fakeIncomeRepo) Delete(_ context.Context, _, _ uuid.UUID) error         { return nil }

type fakeRecurringRepo struct {
	records []*entity.RecurringTransaction
}

func (r *fakeRecurringRepo) Create(_ context.Context, tx *entity.RecurringTransaction) error {
	r.records = append(r.records, tx)
	return nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.RecurringTransaction, error) {
	for _, tx := range r.records {
		if tx.ID == id && tx.UserID == userID {
			return tx, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRecurringRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var out []*entity.RecurringTransaction
	for _, tx := range r.records {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) FindActiveStartedBy(_ context.Context, userID uuid.UUID, date time.Time) ([]*entity.RecurringTransaction, error) {
	var out []*entity.RecurringTransaction
	for _, tx := range r.records {
		if tx.UserID == userID && tx.IsActive && !tx.StartDate.After(date) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, _ *entity.RecurringTransaction) error {
	return nil
}
func (r *fakeRecurringRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeOneTimeRepo struct {
	records []*entity.OneTimeTransaction
}

func (r *fakeOneTimeRepo) Create(_ context.Context, tx *entity.OneTimeTransaction) error {
	r.records = append(r.records, tx)
	return nil
}

func (r *fakeOneTimeRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.OneTimeTransaction, error) {
	for _, tx := range r.records {
		if tx.ID == id && tx.UserID == userID {
			return tx, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeOneTimeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.OneTimeTransaction, error) {
	var out []*entity.OneTimeTransaction
	for _, tx := range r.records {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeOneTimeRepo) FindByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.OneTimeTransaction, error) {
	var out []*entity.OneTimeTransaction
	for _, tx := range r.records {
		if tx.UserID == userID && !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeOneTimeRepo) Update(_ context.Context, _ *entity.OneTimeTransaction) error { return nil }
func (r *fakeOneTimeRepo) Delete(_ context.Context, _, _ uuid.UUID) error               { return nil }

type fakeGoalRepo struct {
	records []*entity.SavingsGoal
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	r.records = append(r.records, goal)
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	for _, goal := range r.records {
		if goal.ID == id && goal.UserID == userID {
			return goal, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var out []*entity.SavingsGoal
	for _, goal := range r.records {
		if goal.UserID == userID {
			out = append(out, goal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetDate.Before(out[j].TargetDate) })
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, _ *entity.SavingsGoal) error { return nil }
func (r *fakeGoalRepo) Delete(_ context.Context, _, _ uuid.UUID) error        { return nil }

type exportFixture struct {
	uc        *UseCase
	userID    uuid.UUID
	incomes   *fakeIncomeRepo
	recurring *fakeRecurringRepo
	oneTime   *fakeOneTimeRepo
}

func newExportFixture() *exportFixture {
	incomes := &fakeIncomeRepo{}
	recurring := &fakeRecurringRepo{}
	oneTime := &fakeOneTimeRepo{}
	goals := &fakeGoalRepo{}
	clock := fixedClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}

	builder := summary.NewBuildMonthlySummaryUseCase(incomes, recurring, oneTime, goals, clock)

	return &exportFixture{
		uc:        NewUseCase(builder, incomes, recurring, oneTime),
		userID:    uuid.New(),
		incomes:   incomes,
		recurring: recurring,
		oneTime:   oneTime,
	}
}

func (f *exportFixture) addIncome(source string, amount int64, active bool) {
	f.incomes.records = append(f.incomes.records, entity.NewIncomeRecord(
		f.userID, source, decimal.NewFromInt(amount),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), active))
}

func (f *exportFixture) addOneTime(name, category string, amount int64, date time.Time) {
	f.oneTime.records = append(f.oneTime.records, entity.NewOneTimeTransaction(
		f.userID, name, decimal.NewFromInt(amount), category, date))
}

func (f *exportFixture) addRecurring(name string, amount int64, active bool) {
	tx := entity.NewRecurringTransaction(f.userID, name, decimal.NewFromInt(amount),
		entity.RecurringTypeBill, "Housing", entity.FrequencyMonthly,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	tx.IsActive = active
	f.recurring.records = append(f.recurring.records, tx)
}

func TestExportUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture()
	f.addIncome("Salary", 50000, true)

	base := Input{
		UserID:     f.userID,
		StartMonth: 1, StartYear: 2024,
		EndMonth: 3, EndYear: 2024,
		Type:   TypeIncome,
		Format: FormatCSV,
	}

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{
			name:    "unknown type",
			mutate:  func(in *Input) { in.Type = "everything" },
			wantErr: domainerror.ErrInvalidExportType,
		},
		{
			name:    "unknown format",
			mutate:  func(in *Input) { in.Format = "pdf" },
			wantErr: domainerror.ErrInvalidExportFormat,
		},
		{
			name:    "month out of range",
			mutate:  func(in *Input) { in.StartMonth = 13 },
			wantErr: domainerror.ErrInvalidExportRange,
		},
		{
			name:    "year out of range",
			mutate:  func(in *Input) { in.EndYear = 1999 },
			wantErr: domainerror.ErrInvalidExportRange,
		},
		{
			name: "start after end",
			mutate: func(in *Input) {
				in.StartMonth, in.StartYear = 4, 2024
				in.EndMonth, in.EndYear = 1, 2024
			},
			wantErr: domainerror.ErrInvalidExportRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)

			_, err := f.uc.Execute(ctx, input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExportUseCase_EmptyRangeRejected(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture()

	// A one-time transaction outside the requested range must not count.
	f.addOneTime("Outside", "Misc", 100, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))

	_, err := f.uc.Execute(ctx, Input{
		UserID:     f.userID,
		StartMonth: 1, StartYear: 2024,
		EndMonth: 3, EndYear: 2024,
		Type:   TypeOneTime,
		Format: FormatCSV,
	})
	if !errors.Is(err, domainerror.ErrNoExportData) {
		t.Errorf("expected ErrNoExportData, got %v", err)
	}
}

func TestExportUseCase_CSV(t *testing.T) {
	ctx := context.Background()

	t.Run("income section with quoting", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary, main job", 50000, true)
		f.addIncome("Freelance", 12000, false)

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 1, EndYear: 2024,
			Type:   TypeIncome,
			Format: FormatCSV,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := string(out.Data)
		if !strings.HasPrefix(text, "Source,Amount,Date,Status\n") {
			t.Errorf("unexpected header line in %q", text)
		}
		if !strings.Contains(text, `"Salary, main job",50000,2024-01-15,Active`) {
			t.Errorf("expected quoted source field, got %q", text)
		}
		if !strings.Contains(text, "Freelance,12000,2024-01-15,Inactive") {
			t.Errorf("expected inactive row, got %q", text)
		}
		if out.ContentType != "text/csv; charset=utf-8" {
			t.Errorf("unexpected content type %q", out.ContentType)
		}
		if out.FileName != "income_2024-01_2024-01.csv" {
			t.Errorf("unexpected file name %q", out.FileName)
		}
	})

	t.Run("monthly summary rows one per month", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary", 50000, true)

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 3, EndYear: 2024,
			Type:   TypeMonthlySummary,
			Format: FormatCSV,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(string(out.Data), "\n"), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header + 3 month rows, got %d lines", len(lines))
		}
		if lines[1] != "1,2024,50000,0,0,0,0,50000" {
			t.Errorf("unexpected January row %q", lines[1])
		}
	})

	t.Run("full export has four titled sections", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary", 50000, true)
		f.addRecurring("Rent", 18000, true)
		f.addOneTime("Repair", "Home", 800, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 3, EndYear: 2024,
			Type:   TypeFull,
			Format: FormatCSV,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		text := string(out.Data)
		for _, section := range []string{"Monthly Summary\n", "Recurring\n", "One-Time\n", "Income\n"} {
			if !strings.Contains(text, section) {
				t.Errorf("expected section title %q in output", strings.TrimSpace(section))
			}
		}
	})
}

func TestExportUseCase_XLSX(t *testing.T) {
	ctx := context.Background()

	t.Run("income sheet formulas", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary", 50000, true)
		f.addIncome("Freelance", 12000, false)

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 1, EndYear: 2024,
			Type:   TypeIncome,
			Format: FormatXLSX,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wb, err := excelize.OpenReader(bytes.NewReader(out.Data))
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer wb.Close()

		header, err := wb.GetCellValue("Income", "A1")
		if err != nil || header != "Source" {
			t.Errorf("expected A1 = Source, got %q (err %v)", header, err)
		}

		// Two data rows: totals on row 4, active SUMIF on row 5.
		total, err := wb.GetCellFormula("Income", "B4")
		if err != nil || total != "SUM(B2:B3)" {
			t.Errorf("expected SUM(B2:B3), got %q (err %v)", total, err)
		}
		active, err := wb.GetCellFormula("Income", "B5")
		if err != nil || active != `SUMIF(D2:D3,"Active",B2:B3)` {
			t.Errorf("expected active SUMIF, got %q (err %v)", active, err)
		}
	})

	t.Run("full export cross-sheet references", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary", 50000, true)
		f.addRecurring("Rent", 18000, true)
		f.addRecurring("Old gym", 499, false)
		f.addOneTime("Repair", "Home", 800, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 2, EndYear: 2024,
			Type:   TypeFull,
			Format: FormatXLSX,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wb, err := excelize.OpenReader(bytes.NewReader(out.Data))
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer wb.Close()

		sheets := wb.GetSheetList()
		if len(sheets) != 4 {
			t.Fatalf("expected 4 sheets, got %v", sheets)
		}

		// Two month rows: averages on row 5, cross-sheet pulls on rows 6-7.
		// One income row puts the Income sheet's active total on row 4.
		activeIncome, err := wb.GetCellFormula("Monthly Summary", "B6")
		if err != nil || activeIncome != "'Income'!B4" {
			t.Errorf("expected 'Income'!B4, got %q (err %v)", activeIncome, err)
		}

		activeRecurring, err := wb.GetCellFormula("Monthly Summary", "B7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(activeRecurring, "SUMIF('Recurring'!G2:G3") {
			t.Errorf("expected recurring SUMIF over two data rows, got %q", activeRecurring)
		}
	})

	t.Run("empty sections stay header-only", func(t *testing.T) {
		f := newExportFixture()
		f.addIncome("Salary", 50000, true)

		out, err := f.uc.Execute(ctx, Input{
			UserID:     f.userID,
			StartMonth: 1, StartYear: 2024,
			EndMonth: 2, EndYear: 2024,
			Type:   TypeFull,
			Format: FormatXLSX,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wb, err := excelize.OpenReader(bytes.NewReader(out.Data))
		if err != nil {
			t.Fatalf("failed to open workbook: %v", err)
		}
		defer wb.Close()

		// A sheet without data rows must not carry summary formulas; a
		// SUM over zero rows would reference an inverted range.
		for sheet, col := range map[string]string{"One-Time": "C", "Recurring": "E"} {
			for row := 2; row <= 3; row++ {
				cell := fmt.Sprintf("%s%d", col, row)
				formula, err := wb.GetCellFormula(sheet, cell)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if formula != "" {
					t.Errorf("%s!%s: expected no formula, got %q", sheet, cell, formula)
				}
			}
			label, err := wb.GetCellValue(sheet, "A2")
			if err != nil || label != "" {
				t.Errorf("%s!A2: expected empty cell, got %q (err %v)", sheet, label, err)
			}
		}

		// The cross-sheet income pull survives; the recurring pull is
		// dropped with its empty sheet. Two month rows put them on 6-7.
		activeIncome, err := wb.GetCellFormula("Monthly Summary", "B6")
		if err != nil || activeIncome != "'Income'!B4" {
			t.Errorf("expected 'Income'!B4, got %q (err %v)", activeIncome, err)
		}
		activeRecurring, err := wb.GetCellFormula("Monthly Summary", "B7")
		if err != nil || activeRecurring != "" {
			t.Errorf("expected no recurring pull, got %q (err %v)", activeRecurring, err)
		}
	})
}
