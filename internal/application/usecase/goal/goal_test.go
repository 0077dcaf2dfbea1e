// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeGoalRepo struct {
	records map[uuid.UUID]*entity.SavingsGoal
	failOn  string
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{records: make(map[uuid.UUID]*entity.SavingsGoal)}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.SavingsGoal) error {
	r.records[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	if r.failOn == "find" {
		return nil, errors.New("db down")
	}
	goal, ok := r.records[id]
	if !ok || goal.UserID != userID {
		return nil, domainerror.ErrSavingsGoalNotFound
	}
	return goal, nil
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

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.SavingsGoal) error {
	r.records[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	delete(r.records, id)
	return nil
}

func TestCreateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	valid := func() CreateGoalInput {
		return CreateGoalInput{
			UserID:        userID,
			Name:          "Emergency fund",
			TargetAmount:  decimal.NewFromInt(50000),
			CurrentAmount: decimal.NewFromInt(10000),
			TargetDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("creates a goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		uc := NewCreateGoalUseCase(repo, clock)

		out, err := uc.Execute(ctx, valid())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goal.Name != "Emergency fund" {
			t.Errorf("expected goal name preserved, got %q", out.Goal.Name)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepo(), clock)

		tests := []struct {
			name    string
			mutate  func(*CreateGoalInput)
			wantErr error
		}{
			{
				name:    "zero target",
				mutate:  func(in *CreateGoalInput) { in.TargetAmount = decimal.Zero },
				wantErr: domainerror.ErrInvalidTargetAmount,
			},
			{
				name:    "negative current",
				mutate:  func(in *CreateGoalInput) { in.CurrentAmount = decimal.NewFromInt(-1) },
				wantErr: domainerror.ErrInvalidCurrentAmount,
			},
			{
				name: "current equals target",
				mutate: func(in *CreateGoalInput) {
					in.CurrentAmount = in.TargetAmount
				},
				wantErr: domainerror.ErrCurrentExceedsTarget,
			},
			{
				name: "target date in the past",
				mutate: func(in *CreateGoalInput) {
					in.TargetDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
				},
				wantErr: domainerror.ErrTargetDateNotFuture,
			},
			{
				name: "target date is now",
				mutate: func(in *CreateGoalInput) {
					in.TargetDate = now
				},
				wantErr: domainerror.ErrTargetDateNotFuture,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := valid()
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			})
		}
	})
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(repo *fakeGoalRepo) *entity.SavingsGoal {
		goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(20000),
			decimal.NewFromInt(5000), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		repo.records[goal.ID] = goal
		return goal
	}

	t.Run("allows overfunding an existing goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		// Past the target on purpose. Creation forbids this, update does not.
		overfunded := decimal.NewFromInt(25000)
		out, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, CurrentAmount: &overfunded})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Goal.CurrentAmount.Equal(overfunded) {
			t.Errorf("expected current amount 25000, got %s", out.Goal.CurrentAmount)
		}
	})

	t.Run("allows a past target date", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		if _, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, TargetDate: &past}); err != nil {
			t.Errorf("expected past target date to be accepted on update, got %v", err)
		}
	})

	t.Run("still rejects malformed amounts", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		zero := decimal.Zero
		if _, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, TargetAmount: &zero}); !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected ErrInvalidTargetAmount, got %v", err)
		}

		negative := decimal.NewFromInt(-100)
		if _, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, CurrentAmount: &negative}); !errors.Is(err, domainerror.ErrInvalidCurrentAmount) {
			t.Errorf("expected ErrInvalidCurrentAmount, got %v", err)
		}
	})

	t.Run("reports another user's goal as not found", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seed(repo)
		uc := NewUpdateGoalUseCase(repo)

		name := "Hijack"
		_, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: uuid.New(), Name: &name})
		if !errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			t.Errorf("expected ErrSavingsGoalNotFound, got %v", err)
		}
	})

	t.Run("store failure is not reported as missing goal", func(t *testing.T) {
		repo := newFakeGoalRepo()
		goal := seed(repo)
		repo.failOn = "find"
		uc := NewUpdateGoalUseCase(repo)

		name := "Renamed"
		_, err := uc.Execute(ctx, UpdateGoalInput{ID: goal.ID, UserID: userID, Name: &name})
		if err == nil || errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			t.Errorf("expected a wrapped store error, got %v", err)
		}
	})
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeGoalRepo()
	goal := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(20000),
		decimal.NewFromInt(5000), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.records[goal.ID] = goal

	uc := NewDeleteGoalUseCase(repo)

	if err := uc.Execute(ctx, DeleteGoalInput{ID: goal.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("expected goal to be removed")
	}

	if err := uc.Execute(ctx, DeleteGoalInput{ID: goal.ID, UserID: userID}); !errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
		t.Errorf("expected ErrSavingsGoalNotFound, got %v", err)
	}
}

func TestListGoalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	repo := newFakeGoalRepo()
	later := entity.NewSavingsGoal(userID, "House", decimal.NewFromInt(500000),
		decimal.NewFromInt(100000), time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC))
	sooner := entity.NewSavingsGoal(userID, "Vacation", decimal.NewFromInt(20000),
		decimal.NewFromInt(5000), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.records[later.ID] = later
	repo.records[sooner.ID] = sooner

	uc := NewListGoalsUseCase(repo)

	out, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(out.Goals))
	}
	if out.Goals[0].ID != sooner.ID {
		t.Error("expected goals ordered by target date ascending")
	}
}
