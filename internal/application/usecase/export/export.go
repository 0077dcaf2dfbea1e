package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/application/usecase/summary"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// Type selects which section(s) of the user's data the export contains.
type Type string

const (
	TypeMonthlySummary Type = "monthly-summary"
	TypeRecurring      Type = "recurring"
	TypeOneTime        Type = "one-time"
	TypeIncome         Type = "income"
	TypeFull           Type = "full"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Caps export fan-out the same way analytics caps its window builds.
	maxConcurrentMonthBuilds = 12
)

// Input represents the input for an export request.
type Input struct {
	UserID     uuid.UUID
	StartMonth int
	StartYear  int
	EndMonth   int
	EndYear    int
	Type       Type
	Format     Format
}

// Output is the encoded file ready for download.
type Output struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UseCase builds CSV and XLSX exports. Monthly summary rows come from the
// summary builder per month in the range; recurring and income sections are
// full history independent of the month window; one-time transactions are
// fetched for the range's calendar bounds.
type UseCase struct {
	builder       *summary.BuildMonthlySummaryUseCase
	incomeRepo    adapter.IncomeRepository
	recurringRepo adapter.RecurringRepository
	oneTimeRepo   adapter.OneTimeRepository
}

// NewUseCase creates a new export UseCase instance.
func NewUseCase(
	builder *summary.BuildMonthlySummaryUseCase,
	incomeRepo adapter.IncomeRepository,
	recurringRepo adapter.RecurringRepository,
	oneTimeRepo adapter.OneTimeRepository,
) *UseCase {
	return &UseCase{
		builder:       builder,
		incomeRepo:    incomeRepo,
		recurringRepo: recurringRepo,
		oneTimeRepo:   oneTimeRepo,
	}
}

// exportData holds the projected rows for every section the export needs.
type exportData struct {
	summaries []MonthlySummaryRow
	recurring []RecurringRow
	oneTime   []OneTimeRow
	income    []IncomeRow
}

// Execute validates the request, gathers the data and encodes the file. A
// request whose section has zero rows is rejected with a no-data error, not
// answered with an empty file.
func (uc *UseCase) Execute(ctx context.Context, input Input) (*Output, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	months := summary.MonthsInRange(input.StartMonth, input.StartYear, input.EndMonth, input.EndYear)
	if len(months) == 0 {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeInvalidExportRange,
			"start of range must not be after end",
			domainerror.ErrInvalidExportRange,
		)
	}

	data, err := uc.gather(ctx, input, months)
	if err != nil {
		return nil, err
	}

	if err := rejectEmpty(input.Type, data); err != nil {
		return nil, err
	}

	var encoded []byte
	switch input.Format {
	case FormatCSV:
		encoded, err = encodeCSVExport(input.Type, data)
	case FormatXLSX:
		encoded, err = encodeXLSXExport(input.Type, data)
	}
	if err != nil {
		return nil, domainerror.NewExportError(
			domainerror.ErrCodeExportEncodeFailed,
			"failed to encode export file",
			err,
		)
	}

	return &Output{
		FileName:    fileName(input),
		ContentType: contentTypeFor(input.Format),
		Data:        encoded,
	}, nil
}

func validate(input Input) error {
	switch input.Type {
	case TypeMonthlySummary, TypeRecurring, TypeOneTime, TypeIncome, TypeFull:
	default:
		return domainerror.NewExportError(
			domainerror.ErrCodeInvalidExportType,
			fmt.Sprintf("unknown export type %q", input.Type),
			domainerror.ErrInvalidExportType,
		)
	}

	switch input.Format {
	case FormatCSV, FormatXLSX:
	default:
		return domainerror.NewExportError(
			domainerror.ErrCodeInvalidExportFormat,
			fmt.Sprintf("unknown export format %q", input.Format),
			domainerror.ErrInvalidExportFormat,
		)
	}

	for _, month := range []int{input.StartMonth, input.EndMonth} {
		if month < 1 || month > 12 {
			return domainerror.NewExportError(
				domainerror.ErrCodeInvalidExportRange,
				fmt.Sprintf("month %d out of range", month),
				domainerror.ErrInvalidExportRange,
			)
		}
	}
	for _, year := range []int{input.StartYear, input.EndYear} {
		if year < 2000 || year > 2100 {
			return domainerror.NewExportError(
				domainerror.ErrCodeInvalidExportRange,
				fmt.Sprintf("year %d out of range", year),
				domainerror.ErrInvalidExportRange,
			)
		}
	}

	return nil
}

func (uc *UseCase) gather(ctx context.Context, input Input, months []summary.MonthRef) (*exportData, error) {
	data := &exportData{}

	if input.Type == TypeMonthlySummary || input.Type == TypeFull {
		summaries := make([]*summary.MonthlySummary, len(months))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxConcurrentMonthBuilds)
		for i, ref := range months {
			g.Go(func() error {
				built, err := uc.builder.Execute(gctx, summary.BuildMonthlySummaryInput{
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
		data.summaries = monthlySummaryRows(summaries)
	}

	if input.Type == TypeRecurring || input.Type == TypeFull {
		txs, err := uc.recurringRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch recurring transactions: %w", err)
		}
		data.recurring = recurringRows(txs)
	}

	if input.Type == TypeOneTime || input.Type == TypeFull {
		rangeStart, _ := summary.MonthBounds(input.StartMonth, input.StartYear)
		_, rangeEnd := summary.MonthBounds(input.EndMonth, input.EndYear)
		txs, err := uc.oneTimeRepo.FindByDateRange(ctx, input.UserID, rangeStart, rangeEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch one-time transactions: %w", err)
		}
		data.oneTime = oneTimeRows(txs)
	}

	if input.Type == TypeIncome || input.Type == TypeFull {
		incomes, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch income records: %w", err)
		}
		data.income = incomeRows(incomes)
	}

	return data, nil
}

// rejectEmpty enforces the empty-result rule. Monthly summary rows always
// exist for a valid range (zeroed months are still rows), so the check
// applies to the record-backed sections: a single-section export with no
// records, or a full export where every record section is empty, is refused.
func rejectEmpty(exportType Type, data *exportData) error {
	empty := false
	switch exportType {
	case TypeRecurring:
		empty = len(data.recurring) == 0
	case TypeOneTime:
		empty = len(data.oneTime) == 0
	case TypeIncome:
		empty = len(data.income) == 0
	case TypeFull:
		empty = len(data.recurring) == 0 && len(data.oneTime) == 0 && len(data.income) == 0
	}

	if empty {
		return domainerror.NewExportError(
			domainerror.ErrCodeNoExportData,
			"no data in selected range",
			domainerror.ErrNoExportData,
		)
	}
	return nil
}

func encodeCSVExport(exportType Type, data *exportData) ([]byte, error) {
	switch exportType {
	case TypeMonthlySummary:
		return encodeCSV([]csvSection{{header: monthlySummaryHeader, rows: monthlySummaryCSVRows(data.summaries)}})
	case TypeRecurring:
		return encodeCSV([]csvSection{{header: recurringHeader, rows: recurringCSVRows(data.recurring)}})
	case TypeOneTime:
		return encodeCSV([]csvSection{{header: oneTimeHeader, rows: oneTimeCSVRows(data.oneTime)}})
	case TypeIncome:
		return encodeCSV([]csvSection{{header: incomeHeader, rows: incomeCSVRows(data.income)}})
	case TypeFull:
		return encodeCSV([]csvSection{
			{title: sheetMonthlySummary, header: monthlySummaryHeader, rows: monthlySummaryCSVRows(data.summaries)},
			{title: sheetRecurring, header: recurringHeader, rows: recurringCSVRows(data.recurring)},
			{title: sheetOneTime, header: oneTimeHeader, rows: oneTimeCSVRows(data.oneTime)},
			{title: sheetIncome, header: incomeHeader, rows: incomeCSVRows(data.income)},
		})
	}
	return nil, fmt.Errorf("unknown export type %q", exportType)
}

func encodeXLSXExport(exportType Type, data *exportData) ([]byte, error) {
	switch exportType {
	case TypeMonthlySummary:
		return encodeXLSX([]string{sheetMonthlySummary}, func(f *excelize.File) error {
			return writeMonthlySummarySheet(f, data.summaries, false, 0, 0)
		})
	case TypeRecurring:
		return encodeXLSX([]string{sheetRecurring}, func(f *excelize.File) error {
			return writeRecurringSheet(f, data.recurring)
		})
	case TypeOneTime:
		return encodeXLSX([]string{sheetOneTime}, func(f *excelize.File) error {
			return writeOneTimeSheet(f, data.oneTime)
		})
	case TypeIncome:
		return encodeXLSX([]string{sheetIncome}, func(f *excelize.File) error {
			return writeIncomeSheet(f, data.income)
		})
	case TypeFull:
		sheets := []string{sheetMonthlySummary, sheetRecurring, sheetOneTime, sheetIncome}
		return encodeXLSX(sheets, func(f *excelize.File) error {
			if err := writeMonthlySummarySheet(f, data.summaries, true, len(data.recurring), len(data.income)); err != nil {
				return err
			}
			if err := writeRecurringSheet(f, data.recurring); err != nil {
				return err
			}
			if err := writeOneTimeSheet(f, data.oneTime); err != nil {
				return err
			}
			return writeIncomeSheet(f, data.income)
		})
	}
	return nil, fmt.Errorf("unknown export type %q", exportType)
}

func fileName(input Input) string {
	return fmt.Sprintf("%s_%d-%02d_%d-%02d.%s",
		input.Type, input.StartYear, input.StartMonth, input.EndYear, input.EndMonth, input.Format)
}

func contentTypeFor(format Format) string {
	if format == FormatXLSX {
		return contentTypeXLSX
	}
	return contentTypeCSV
}
