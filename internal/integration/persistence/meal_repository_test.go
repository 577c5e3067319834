package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

func newMeal(ownerID uuid.UUID, at time.Time, foodIDs ...uuid.UUID) *entity.Meal {
	items := make([]entity.MealItem, len(foodIDs))
	for i, id := range foodIDs {
		items[i] = entity.MealItem{
			FoodID:   id,
			Quantity: decimal.NewFromInt(int64(100 + i)),
			Unit:     entity.UnitGram,
		}
	}
	return entity.NewMeal(ownerID, entity.MealTypeLunch, at, "", items, time.Now())
}

func TestMealRepository(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

	t.Run("create and find with items in order", func(t *testing.T) {
		repo := NewMealRepository(newTestDB(t))
		foodA, foodB := uuid.New(), uuid.New()
		meal := newMeal(uuid.New(), day.Add(12*time.Hour), foodA, foodB)
		meal.Notes = "after training"

		if err := repo.Create(ctx, meal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, meal.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Notes != "after training" {
			t.Errorf("expected notes to round trip, got %q", found.Notes)
		}
		if len(found.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(found.Items))
		}
		if found.Items[0].FoodID != foodA || found.Items[1].FoodID != foodB {
			t.Error("expected items in logged order")
		}
		if !found.Items[1].Quantity.Equal(decimal.NewFromInt(101)) {
			t.Errorf("expected quantity 101, got %s", found.Items[1].Quantity)
		}
		if !found.OccurredAt.Equal(meal.OccurredAt) {
			t.Errorf("expected occurred_at %s, got %s", meal.OccurredAt, found.OccurredAt)
		}
	})

	t.Run("date range is half open", func(t *testing.T) {
		repo := NewMealRepository(newTestDB(t))
		ownerID := uuid.New()
		food := uuid.New()
		inside := []time.Time{day, day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)}
		outside := []time.Time{day.Add(-time.Second), day.AddDate(0, 0, 1)}
		for _, at := range append(append([]time.Time{}, inside...), outside...) {
			if err := repo.Create(ctx, newMeal(ownerID, at, food)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := repo.Create(ctx, newMeal(uuid.New(), day.Add(time.Hour), food)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		meals, err := repo.FindByOwnerAndDateRange(ctx, ownerID, day, day.AddDate(0, 0, 1))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(meals) != len(inside) {
			t.Fatalf("expected %d meals, got %d", len(inside), len(meals))
		}
		for i, meal := range meals {
			if !meal.OccurredAt.Equal(inside[i]) {
				t.Errorf("meal %d: expected %s, got %s", i, inside[i], meal.OccurredAt)
			}
			if len(meal.Items) != 1 {
				t.Errorf("meal %d: expected items to be loaded", i)
			}
		}
	})

	t.Run("update replaces items", func(t *testing.T) {
		repo := NewMealRepository(newTestDB(t))
		meal := newMeal(uuid.New(), day, uuid.New(), uuid.New())
		if err := repo.Create(ctx, meal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		replacement := uuid.New()
		meal.Type = entity.MealTypeDinner
		meal.ReplaceItems([]entity.MealItem{{FoodID: replacement, Quantity: decimal.NewFromInt(30), Unit: entity.UnitSlice}})
		if err := repo.Update(ctx, meal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, meal.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Type != entity.MealTypeDinner {
			t.Errorf("expected DINNER, got %s", found.Type)
		}
		if len(found.Items) != 1 || found.Items[0].FoodID != replacement || found.Items[0].Unit != entity.UnitSlice {
			t.Errorf("unexpected items %+v", found.Items)
		}
	})

	t.Run("delete removes the meal", func(t *testing.T) {
		repo := NewMealRepository(newTestDB(t))
		meal := newMeal(uuid.New(), day, uuid.New())
		if err := repo.Create(ctx, meal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(ctx, meal.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, meal.ID); !errors.Is(err, domainerror.ErrMealNotFound) {
			t.Errorf("expected ErrMealNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, meal.ID); !errors.Is(err, domainerror.ErrMealNotFound) {
			t.Errorf("expected ErrMealNotFound on second delete, got %v", err)
		}
	})
}
