package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

func TestFoodRepository(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo adapter.FoodRepository, names ...string) []*entity.Food {
		t.Helper()
		foods := make([]*entity.Food, len(names))
		for i, name := range names {
			foods[i] = entity.NewFood(name, nutrients("100", "10", "10", "1.5"), time.Now())
			if err := repo.Create(ctx, foods[i]); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		return foods
	}

	t.Run("find by id round trips nutrient values", func(t *testing.T) {
		repo := NewFoodRepository(newTestDB(t))
		food := entity.NewFood("Oats", nutrients("389", "16.9", "66.3", "6.9"), time.Now())
		if err := repo.Create(ctx, food); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, food.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Nutrients.Equal(food.Nutrients) {
			t.Errorf("expected %+v, got %+v", food.Nutrients, found.Nutrients)
		}

		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrFoodNotFound) {
			t.Errorf("expected ErrFoodNotFound, got %v", err)
		}
	})

	t.Run("list filters by name and orders by name", func(t *testing.T) {
		repo := NewFoodRepository(newTestDB(t))
		seed(t, repo, "White rice", "Banana", "Brown Rice")

		foods, err := repo.List(ctx, adapter.FoodFilter{Name: "rice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(foods) != 2 {
			t.Fatalf("expected 2 foods, got %d", len(foods))
		}
		if foods[0].Name != "Brown Rice" || foods[1].Name != "White rice" {
			t.Errorf("unexpected order %q, %q", foods[0].Name, foods[1].Name)
		}

		all, err := repo.List(ctx, adapter.FoodFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("expected 3 foods, got %d", len(all))
		}
	})

	t.Run("list treats wildcard characters literally", func(t *testing.T) {
		repo := NewFoodRepository(newTestDB(t))
		seed(t, repo, "Milk 100%", "Milk 1000", "Whole_wheat bread", "Rice wafers")

		tests := []struct {
			filter string
			want   []string
		}{
			{"100%", []string{"Milk 100%"}},
			{"e_w", []string{"Whole_wheat bread"}},
			{"%", []string{"Milk 100%"}},
			{`\`, nil},
		}

		for _, tt := range tests {
			t.Run(tt.filter, func(t *testing.T) {
				foods, err := repo.List(ctx, adapter.FoodFilter{Name: tt.filter})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(foods) != len(tt.want) {
					t.Fatalf("expected %d foods, got %d", len(tt.want), len(foods))
				}
				for i, name := range tt.want {
					if foods[i].Name != name {
						t.Errorf("food %d: expected %q, got %q", i, name, foods[i].Name)
					}
				}
			})
		}
	})

	t.Run("exists by name ignores case and the excluded id", func(t *testing.T) {
		repo := NewFoodRepository(newTestDB(t))
		foods := seed(t, repo, "Apple")

		exists, err := repo.ExistsByName(ctx, "APPLE", uuid.Nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected name to exist")
		}

		exists, err = repo.ExistsByName(ctx, "apple", foods[0].ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the excluded food to be ignored")
		}
	})

	t.Run("update", func(t *testing.T) {
		repo := NewFoodRepository(newTestDB(t))
		foods := seed(t, repo, "Apple")

		food := foods[0]
		food.Name = "Green apple"
		food.Nutrients.Calories = decimal.NewFromInt(58)
		food.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, food); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, food.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Green apple" || !found.Nutrients.Calories.Equal(decimal.NewFromInt(58)) {
			t.Errorf("unexpected food %+v", found)
		}

		ghost := entity.NewFood("Ghost", nutrients("1", "1", "1", "1"), time.Now())
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrFoodNotFound) {
			t.Errorf("expected ErrFoodNotFound, got %v", err)
		}
	})
}
