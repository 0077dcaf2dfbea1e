package summary

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

func newTestBuilder(
	incomeRepo *fakeIncomeRepo,
	recurringRepo *fakeRecurringRepo,
	oneTimeRepo *fakeOneTimeRepo,
	goalRepo *fakeSavingsGoalRepo,
	now time.Time,
) *BuildMonthlySummaryUseCase {
	return NewBuildMonthlySummaryUseCase(
		incomeRepo, recurringRepo, oneTimeRepo, goalRepo, fixedClock{t: now},
	)
}

func TestBuildMonthlySummaryEmptyUser(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestBuilder(&fakeIncomeRepo{}, &fakeRecurringRepo{}, &fakeOneTimeRepo{}, &fakeSavingsGoalRepo{}, now)

	got, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{
		UserID: uuid.New(), Month: 6, Year: 2025,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Income.Total.IsZero() || got.Income.Count != 0 {
		t.Errorf("income = {%s, %d}, want zero", got.Income.Total, got.Income.Count)
	}
	if !got.Recurring.Total.IsZero() || got.Recurring.Count != 0 {
		t.Errorf("recurring = {%s, %d}, want zero", got.Recurring.Total, got.Recurring.Count)
	}
	if !got.OneTime.Total.IsZero() || got.OneTime.Count != 0 {
		t.Errorf("one-time = {%s, %d}, want zero", got.OneTime.Total, got.OneTime.Count)
	}
	if !got.CashFlow.NetCashFlow.IsZero() {
		t.Errorf("net cash flow = %s, want 0", got.CashFlow.NetCashFlow)
	}
	if !got.Savings.TotalRequired.IsZero() || !got.Savings.Remaining.IsZero() {
		t.Errorf("savings = {required %s, remaining %s}, want zero",
			got.Savings.TotalRequired, got.Savings.Remaining)
	}
	if len(got.Income.Sources) != 0 || len(got.OneTime.Transactions) != 0 || len(got.Savings.Goals) != 0 {
		t.Error("expected empty lists for a user with no records")
	}
}

func TestBuildMonthlySummaryActiveIncomeOnly(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	date := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	incomeRepo := &fakeIncomeRepo{records: []*entity.IncomeRecord{
		{ID: uuid.New(), UserID: userID, Source: "Salary", Amount: decimal.NewFromInt(72000), Date: date, IsActive: true},
		{ID: uuid.New(), UserID: userID, Source: "Freelance", Amount: decimal.NewFromInt(13000), Date: date, IsActive: true},
		{ID: uuid.New(), UserID: userID, Source: "Old job", Amount: decimal.NewFromInt(45000), Date: date, IsActive: false},
	}}
	uc := newTestBuilder(incomeRepo, &fakeRecurringRepo{}, &fakeOneTimeRepo{}, &fakeSavingsGoalRepo{}, now)

	got, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Income.Total.Equal(decimal.NewFromInt(85000)) {
		t.Errorf("total income = %s, want 85000", got.Income.Total)
	}
	if got.Income.Count != 2 {
		t.Errorf("income count = %d, want 2", got.Income.Count)
	}
}

func TestBuildMonthlySummaryRecurringWindowAndNormalization(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	recurringRepo := &fakeRecurringRepo{records: []*entity.RecurringTransaction{
		{
			ID: uuid.New(), UserID: userID, Name: "Rent",
			Amount: decimal.NewFromInt(1000), Type: entity.RecurringTypeBill,
			Category: "Housing", Frequency: entity.FrequencyWeekly,
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
		{
			ID: uuid.New(), UserID: userID, Name: "Streaming",
			Amount: decimal.NewFromInt(120), Type: entity.RecurringTypeSubscription,
			Category: "Entertainment", Frequency: entity.FrequencyYearly,
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
		{
			// Starts after the summarized month; excluded.
			ID: uuid.New(), UserID: userID, Name: "Gym",
			Amount: decimal.NewFromInt(50), Type: entity.RecurringTypeBill,
			Category: "Health", Frequency: entity.FrequencyMonthly,
			StartDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
		{
			// Inactive; excluded.
			ID: uuid.New(), UserID: userID, Name: "Cancelled box",
			Amount: decimal.NewFromInt(30), Type: entity.RecurringTypeSubscription,
			Category: "Entertainment", Frequency: entity.FrequencyMonthly,
			StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), IsActive: false,
		},
	}}
	uc := newTestBuilder(&fakeIncomeRepo{}, recurringRepo, &fakeOneTimeRepo{}, &fakeSavingsGoalRepo{}, now)

	got, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Recurring.Count != 2 {
		t.Fatalf("recurring count = %d, want 2", got.Recurring.Count)
	}

	wantBills := decimal.NewFromInt(52000).Div(decimal.NewFromInt(12))
	if !got.Recurring.TotalBills.Equal(wantBills) {
		t.Errorf("total bills = %s, want %s", got.Recurring.TotalBills, wantBills)
	}
	wantSubs := decimal.NewFromInt(10)
	if !got.Recurring.TotalSubscriptions.Equal(wantSubs) {
		t.Errorf("total subscriptions = %s, want %s", got.Recurring.TotalSubscriptions, wantSubs)
	}
	if !got.Recurring.Total.Equal(wantBills.Add(wantSubs)) {
		t.Errorf("recurring total = %s, want %s", got.Recurring.Total, wantBills.Add(wantSubs))
	}

	if len(got.Recurring.Bills) != 1 || got.Recurring.Bills[0].Name != "Rent" {
		t.Errorf("bills partition = %+v", got.Recurring.Bills)
	}
	if len(got.Recurring.Subscriptions) != 1 || got.Recurring.Subscriptions[0].Name != "Streaming" {
		t.Errorf("subscriptions partition = %+v", got.Recurring.Subscriptions)
	}

	housing := got.Recurring.ByCategory["Housing"]
	if !housing.TotalAmount.Equal(decimal.NewFromInt(1000)) || !housing.TotalNormalizedAmount.Equal(wantBills) {
		t.Errorf("Housing category = %+v", housing)
	}
}

func TestBuildMonthlySummaryOneTimeWindow(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	oneTimeRepo := &fakeOneTimeRepo{records: []*entity.OneTimeTransaction{
		{ID: uuid.New(), UserID: userID, Name: "New tires", Amount: decimal.NewFromInt(400), Category: "Car", Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Name: "Concert", Amount: decimal.NewFromInt(90), Category: "Fun", Date: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Name: "Last month", Amount: decimal.NewFromInt(55), Category: "Fun", Date: time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Name: "Next month", Amount: decimal.NewFromInt(70), Category: "Fun", Date: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}}
	uc := newTestBuilder(&fakeIncomeRepo{}, &fakeRecurringRepo{}, oneTimeRepo, &fakeSavingsGoalRepo{}, now)

	got, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{UserID: userID, Month: 6, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First and last day of June are inclusive; May 31 and July 1 are not.
	if got.OneTime.Count != 2 {
		t.Fatalf("one-time count = %d, want 2", got.OneTime.Count)
	}
	if !got.OneTime.Total.Equal(decimal.NewFromInt(490)) {
		t.Errorf("one-time total = %s, want 490", got.OneTime.Total)
	}
}

func TestBuildMonthlySummaryCashFlowAndSavings(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	incomeRepo := &fakeIncomeRepo{records: []*entity.IncomeRecord{
		{ID: uuid.New(), UserID: userID, Source: "Salary", Amount: decimal.NewFromInt(90000), IsActive: true},
	}}
	recurringRepo := &fakeRecurringRepo{records: []*entity.RecurringTransaction{
		{
			ID: uuid.New(), UserID: userID, Name: "Rent",
			Amount: decimal.NewFromInt(20000), Type: entity.RecurringTypeBill,
			Category: "Housing", Frequency: entity.FrequencyMonthly,
			StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
	}}
	oneTimeRepo := &fakeOneTimeRepo{records: []*entity.OneTimeTransaction{
		{ID: uuid.New(), UserID: userID, Name: "Repair", Amount: decimal.NewFromInt(5000), Category: "Home", Date: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}}
	goalRepo := &fakeSavingsGoalRepo{records: []*entity.SavingsGoal{
		{
			ID: uuid.New(), UserID: userID, Name: "Vacation",
			TargetAmount: decimal.NewFromInt(100000), CurrentAmount: decimal.NewFromInt(65000),
			TargetDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: uuid.New(), UserID: userID, Name: "Emergency fund",
			TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(15000),
			TargetDate: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
		},
	}}
	uc := newTestBuilder(incomeRepo, recurringRepo, oneTimeRepo, goalRepo, now)

	got, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{UserID: userID, Month: 3, Year: 2025})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.CashFlow.TotalExpenses.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("total expenses = %s, want 25000", got.CashFlow.TotalExpenses)
	}
	if !got.CashFlow.NetCashFlow.Equal(decimal.NewFromInt(65000)) {
		t.Errorf("net cash flow = %s, want 65000", got.CashFlow.NetCashFlow)
	}

	// Vacation needs 3500/month; the overfunded emergency fund contributes
	// -1000/month and is deliberately not clamped.
	if !got.Savings.TotalRequired.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("total required savings = %s, want 2500", got.Savings.TotalRequired)
	}
	if !got.Savings.TotalAvailable.Equal(got.CashFlow.NetCashFlow) {
		t.Errorf("total available = %s, want net cash flow %s",
			got.Savings.TotalAvailable, got.CashFlow.NetCashFlow)
	}
	if !got.Savings.Remaining.Equal(decimal.NewFromInt(62500)) {
		t.Errorf("remaining after savings = %s, want 62500", got.Savings.Remaining)
	}

	// Goals sorted by target date ascending.
	if got.Savings.Goals[0].Goal.Name != "Emergency fund" || got.Savings.Goals[1].Goal.Name != "Vacation" {
		t.Errorf("goal order = [%s, %s], want [Emergency fund, Vacation]",
			got.Savings.Goals[0].Goal.Name, got.Savings.Goals[1].Goal.Name)
	}
}

func TestBuildMonthlySummaryIdempotent(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	incomeRepo := &fakeIncomeRepo{records: []*entity.IncomeRecord{
		{ID: uuid.New(), UserID: userID, Source: "Salary", Amount: decimal.NewFromFloat(4321.09), IsActive: true},
	}}
	recurringRepo := &fakeRecurringRepo{records: []*entity.RecurringTransaction{
		{
			ID: uuid.New(), UserID: userID, Name: "Coffee",
			Amount: decimal.NewFromFloat(3.5), Type: entity.RecurringTypeBill,
			Category: "Food", Frequency: entity.FrequencyDaily,
			StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), IsActive: true,
		},
	}}
	uc := newTestBuilder(incomeRepo, recurringRepo, &fakeOneTimeRepo{}, &fakeSavingsGoalRepo{}, now)

	input := BuildMonthlySummaryInput{UserID: userID, Month: 3, Year: 2025}
	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two builds with no intervening writes should be identical")
	}
}

func TestBuildMonthlySummaryValidation(t *testing.T) {
	uc := newTestBuilder(&fakeIncomeRepo{}, &fakeRecurringRepo{}, &fakeOneTimeRepo{}, &fakeSavingsGoalRepo{},
		time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		month int
		year  int
		want  error
	}{
		{"month zero", 0, 2025, domainerror.ErrInvalidMonth},
		{"month thirteen", 13, 2025, domainerror.ErrInvalidMonth},
		{"year too small", 6, 1999, domainerror.ErrInvalidYear},
		{"year too large", 6, 2101, domainerror.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), BuildMonthlySummaryInput{
				UserID: uuid.New(), Month: tt.month, Year: tt.year,
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
