package summary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

// Fixed clock so goal evaluation and current-month defaults are deterministic.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

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
	return nil, domainerror.ErrIncomeNotFound
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
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, domainerror.ErrRecurringNotFound
}

func (r *fakeRecurringRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var out []*entity.RecurringTransaction
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) FindActiveStartedBy(_ context.Context, userID uuid.UUID, date time.Time) ([]*entity.RecurringTransaction, error) {
	var out []*entity.RecurringTransaction
	for _, rec := range r.records {
		if rec.UserID == userID && rec.IsActive && !rec.StartDate.After(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, _ *entity.RecurringTransaction) error { return nil }
func (r *fakeRecurringRepo) Delete(_ context.Context, _, _ uuid.UUID) error                 { return nil }

type fakeOneTimeRepo struct {
	records []*entity.OneTimeTransaction
}

func (r *fakeOneTimeRepo) Create(_ context.Context, tx *entity.OneTimeTransaction) error {
	r.records = append(r.records, tx)
	return nil
}

func (r *fakeOneTimeRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.OneTimeTransaction, error) {
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, domainerror.ErrOneTimeNotFound
}

func (r *fakeOneTimeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.OneTimeTransaction, error) {
	var out []*entity.OneTimeTransaction
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeOneTimeRepo) FindByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.OneTimeTransaction, error) {
	var out []*entity.OneTimeTransaction
	for _, rec := range r.records {
		if rec.UserID == userID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeOneTimeRepo) Update(_ context.Context, _ *entity.OneTimeTransaction) error { return nil }
func (r *fakeOneTimeRepo) Delete(_ context.Context, _, _ uuid.UUID) error               { return nil }

type fakeSavingsGoalRepo struct {
	records []*entity.SavingsGoal
}

func (r *fakeSavingsGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	r.records = append(r.records, goal)
	return nil
}

func (r *fakeSavingsGoalRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	for _, rec := range r.records {
		if rec.ID == id && rec.UserID == userID {
			return rec, nil
		}
	}
	return nil, domainerror.ErrSavingsGoalNotFound
}

func (r *fakeSavingsGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var out []*entity.SavingsGoal
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeSavingsGoalRepo) Update(_ context.Context, _ *entity.SavingsGoal) error { return nil }
func (r *fakeSavingsGoalRepo) Delete(_ context.Context, _, _ uuid.UUID) error        { return nil }
