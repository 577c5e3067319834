package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{now: time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)}

	t.Run("rescales weekly and monthly from the new daily targets", func(t *testing.T) {
		ownerID := uuid.New()
		hierarchy := entity.NewGoalHierarchy(ownerID, nutrients("2000", "150", "250", "70"), time.Now())
		repo := newMemoryGoalRepository(hierarchy...)
		uc := NewUpdateGoalUseCase(repo, clock)

		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  hierarchy[0].ID,
			OwnerID: ownerID,
			Targets: nutrients("1800", "140", "200", "60"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Goals) != 3 {
			t.Fatalf("expected 3 goals, got %d", len(output.Goals))
		}

		weekly, _ := repo.FindByID(ctx, hierarchy[1].ID)
		if !weekly.Targets.Equal(nutrients("12600", "980", "1400", "420")) {
			t.Errorf("unexpected weekly targets %+v", weekly.Targets)
		}

		monthly, _ := repo.FindByID(ctx, hierarchy[2].ID)
		if !monthly.Targets.Equal(nutrients("54000", "4200", "6000", "1800")) {
			t.Errorf("unexpected monthly targets %+v", monthly.Targets)
		}
		if !monthly.UpdatedAt.Equal(clock.now) {
			t.Errorf("expected updated_at %s, got %s", clock.now, monthly.UpdatedAt)
		}

		daily, _ := repo.FindByID(ctx, hierarchy[0].ID)
		if !daily.Targets.Equal(nutrients("1800", "140", "200", "60")) {
			t.Errorf("unexpected daily targets %+v", daily.Targets)
		}
	})

	t.Run("omits missing siblings instead of failing", func(t *testing.T) {
		ownerID := uuid.New()
		daily := entity.NewGoal(ownerID, entity.GoalTypeDaily, nutrients("2000", "150", "250", "70"), time.Now())
		weekly := daily.Derive(entity.GoalTypeWeekly)
		repo := newMemoryGoalRepository(daily, weekly)
		uc := NewUpdateGoalUseCase(repo, clock)

		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  daily.ID,
			OwnerID: ownerID,
			Targets: nutrients("1000", "100", "100", "10"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(output.Goals))
		}
		if output.Goals[1].Type != entity.GoalTypeWeekly {
			t.Errorf("expected second goal to be WEEKLY, got %s", output.Goals[1].Type)
		}
		if len(repo.goals) != 2 {
			t.Errorf("expected no fabricated goals, store has %d", len(repo.goals))
		}
		if repo.singleSaves != 0 {
			t.Errorf("expected a batch save, got %d single saves", repo.singleSaves)
		}
	})

	t.Run("a lone daily goal is saved on its own", func(t *testing.T) {
		ownerID := uuid.New()
		daily := entity.NewGoal(ownerID, entity.GoalTypeDaily, nutrients("2000", "150", "250", "70"), time.Now())
		repo := newMemoryGoalRepository(daily)
		uc := NewUpdateGoalUseCase(repo, clock)

		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  daily.ID,
			OwnerID: ownerID,
			Targets: nutrients("1000", "100", "100", "10"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 1 {
			t.Fatalf("expected 1 goal, got %d", len(output.Goals))
		}
		if repo.singleSaves != 1 {
			t.Errorf("expected 1 single save, got %d", repo.singleSaves)
		}

		stored, _ := repo.FindByID(ctx, daily.ID)
		if !stored.Targets.Equal(nutrients("1000", "100", "100", "10")) {
			t.Errorf("unexpected daily targets %+v", stored.Targets)
		}
	})

	t.Run("unknown goal is not found", func(t *testing.T) {
		uc := NewUpdateGoalUseCase(newMemoryGoalRepository(), clock)

		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  uuid.New(),
			OwnerID: uuid.New(),
			Targets: nutrients("1800", "140", "200", "60"),
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) {
			t.Fatalf("expected GoalError, got %v", err)
		}
		if goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, goalErr.Code)
		}
	})

	t.Run("targets too large for the monthly goal are rejected", func(t *testing.T) {
		ownerID := uuid.New()
		hierarchy := entity.NewGoalHierarchy(ownerID, nutrients("2000", "150", "250", "70"), time.Now())
		repo := newMemoryGoalRepository(hierarchy...)
		uc := NewUpdateGoalUseCase(repo, clock)

		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  hierarchy[0].ID,
			OwnerID: ownerID,
			Targets: nutrients("40000000", "140", "200", "60"),
		})
		if !errors.Is(err, domainerror.ErrInvalidNutrientTarget) {
			t.Fatalf("expected ErrInvalidNutrientTarget, got %v", err)
		}
		if repo.saved != 0 {
			t.Errorf("expected nothing saved, got %d rows", repo.saved)
		}
	})

	t.Run("goal of another owner is not found", func(t *testing.T) {
		hierarchy := entity.NewGoalHierarchy(uuid.New(), nutrients("2000", "150", "250", "70"), time.Now())
		uc := NewUpdateGoalUseCase(newMemoryGoalRepository(hierarchy...), clock)

		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  hierarchy[0].ID,
			OwnerID: uuid.New(),
			Targets: nutrients("1800", "140", "200", "60"),
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("derived goals are read only", func(t *testing.T) {
		ownerID := uuid.New()
		hierarchy := entity.NewGoalHierarchy(ownerID, nutrients("2000", "150", "250", "70"), time.Now())
		repo := newMemoryGoalRepository(hierarchy...)
		uc := NewUpdateGoalUseCase(repo, clock)

		for _, derived := range hierarchy[1:] {
			_, err := uc.Execute(ctx, UpdateGoalInput{
				GoalID:  derived.ID,
				OwnerID: ownerID,
				Targets: nutrients("1", "1", "1", "1"),
			})
			if !errors.Is(err, domainerror.ErrDerivedGoalReadOnly) {
				t.Errorf("%s: expected ErrDerivedGoalReadOnly, got %v", derived.Type, err)
			}
		}
		if repo.saved != 0 {
			t.Errorf("expected nothing saved, saved %d", repo.saved)
		}
	})

	t.Run("rejects negative targets", func(t *testing.T) {
		ownerID := uuid.New()
		hierarchy := entity.NewGoalHierarchy(ownerID, nutrients("2000", "150", "250", "70"), time.Now())
		uc := NewUpdateGoalUseCase(newMemoryGoalRepository(hierarchy...), clock)

		_, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:  hierarchy[0].ID,
			OwnerID: ownerID,
			Targets: nutrients("-5", "140", "200", "60"),
		})
		if !errors.Is(err, domainerror.ErrInvalidNutrientTarget) {
			t.Fatalf("expected ErrInvalidNutrientTarget, got %v", err)
		}
	})
}
