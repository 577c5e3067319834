package food

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

func nutrients(calories, protein, carbs, fat string) entity.Nutrients {
	return entity.Nutrients{
		Calories: decimal.RequireFromString(calories),
		Protein:  decimal.RequireFromString(protein),
		Carbs:    decimal.RequireFromString(carbs),
		Fat:      decimal.RequireFromString(fat),
	}
}

func TestCreateFoodUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a food with trimmed name", func(t *testing.T) {
		repo := newMemoryFoodRepository()
		uc := NewCreateFoodUseCase(repo, testClock)

		output, err := uc.Execute(ctx, CreateFoodInput{Name: "  Brown rice ", Nutrients: nutrients("111", "2.6", "23", "0.9")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Food.Name != "Brown rice" {
			t.Errorf("expected trimmed name, got %q", output.Food.Name)
		}
		if !output.Food.CreatedAt.Equal(testClock.now) {
			t.Errorf("expected created_at %s, got %s", testClock.now, output.Food.CreatedAt)
		}
		if _, ok := repo.foods[output.Food.ID]; !ok {
			t.Error("expected food to be stored")
		}
	})

	tests := []struct {
		name      string
		input     CreateFoodInput
		wantCode  domainerror.FoodErrorCode
		wantError error
	}{
		{
			name:      "empty name",
			input:     CreateFoodInput{Name: "   ", Nutrients: nutrients("1", "1", "1", "1")},
			wantCode:  domainerror.ErrCodeFoodNameRequired,
			wantError: domainerror.ErrFoodNameRequired,
		},
		{
			name:      "negative nutrient",
			input:     CreateFoodInput{Name: "Broken", Nutrients: nutrients("1", "1", "-1", "1")},
			wantCode:  domainerror.ErrCodeInvalidNutrientValue,
			wantError: domainerror.ErrInvalidNutrientValue,
		},
		{
			name:      "nutrient too large to store",
			input:     CreateFoodInput{Name: "Broken", Nutrients: nutrients("10000000", "1", "1", "1")},
			wantCode:  domainerror.ErrCodeInvalidNutrientValue,
			wantError: domainerror.ErrInvalidNutrientValue,
		},
		{
			name:      "duplicate name ignoring case",
			input:     CreateFoodInput{Name: "apple", Nutrients: nutrients("52", "0.3", "14", "0.2")},
			wantCode:  domainerror.ErrCodeFoodNameAlreadyExists,
			wantError: domainerror.ErrFoodNameAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateFoodUseCase(newMemoryFoodRepository(entity.NewFood("Apple", nutrients("52", "0.3", "14", "0.2"), time.Now())), testClock)

			_, err := uc.Execute(ctx, tt.input)

			var foodErr *domainerror.FoodError
			if !errors.As(err, &foodErr) {
				t.Fatalf("expected FoodError, got %v", err)
			}
			if foodErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, foodErr.Code)
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("expected %v, got %v", tt.wantError, err)
			}
		})
	}
}

func TestUpdateFoodUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates and invalidates the cache", func(t *testing.T) {
		apple := entity.NewFood("Apple", nutrients("52", "0.3", "14", "0.2"), time.Now())
		repo := newMemoryFoodRepository(apple)
		invalidator := &recordingInvalidator{}
		uc := NewUpdateFoodUseCase(repo, invalidator, testClock)

		output, err := uc.Execute(ctx, UpdateFoodInput{FoodID: apple.ID, Name: "Green apple", Nutrients: nutrients("58", "0.4", "14.5", "0.2")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Food.Name != "Green apple" {
			t.Errorf("expected updated name, got %q", output.Food.Name)
		}
		if !repo.foods[apple.ID].Nutrients.Calories.Equal(decimal.NewFromInt(58)) {
			t.Errorf("expected stored calories 58, got %s", repo.foods[apple.ID].Nutrients.Calories)
		}
		if !output.Food.UpdatedAt.Equal(testClock.now) {
			t.Errorf("expected updated_at %s, got %s", testClock.now, output.Food.UpdatedAt)
		}
		if len(invalidator.invalidated) != 1 || invalidator.invalidated[0] != apple.ID {
			t.Errorf("expected cache invalidation for %s, got %v", apple.ID, invalidator.invalidated)
		}
	})

	t.Run("keeping the same name is not a conflict", func(t *testing.T) {
		apple := entity.NewFood("Apple", nutrients("52", "0.3", "14", "0.2"), time.Now())
		uc := NewUpdateFoodUseCase(newMemoryFoodRepository(apple), nil, testClock)

		if _, err := uc.Execute(ctx, UpdateFoodInput{FoodID: apple.ID, Name: "APPLE", Nutrients: nutrients("52", "0.3", "14", "0.2")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("renaming onto another food is a conflict", func(t *testing.T) {
		apple := entity.NewFood("Apple", nutrients("52", "0.3", "14", "0.2"), time.Now())
		pear := entity.NewFood("Pear", nutrients("57", "0.4", "15", "0.1"), time.Now())
		uc := NewUpdateFoodUseCase(newMemoryFoodRepository(apple, pear), nil, testClock)

		_, err := uc.Execute(ctx, UpdateFoodInput{FoodID: pear.ID, Name: "apple", Nutrients: nutrients("57", "0.4", "15", "0.1")})
		if !errors.Is(err, domainerror.ErrFoodNameAlreadyExists) {
			t.Fatalf("expected ErrFoodNameAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown food", func(t *testing.T) {
		uc := NewUpdateFoodUseCase(newMemoryFoodRepository(), nil, testClock)

		_, err := uc.Execute(ctx, UpdateFoodInput{FoodID: uuid.New(), Name: "Ghost", Nutrients: nutrients("1", "1", "1", "1")})
		if !errors.Is(err, domainerror.ErrFoodNotFound) {
			t.Fatalf("expected ErrFoodNotFound, got %v", err)
		}
	})
}

func TestGetAndListFoods(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryFoodRepository(
		entity.NewFood("White rice", nutrients("130", "2.7", "28", "0.3"), time.Now()),
		entity.NewFood("Brown rice", nutrients("111", "2.6", "23", "0.9"), time.Now()),
		entity.NewFood("Banana", nutrients("89", "1.1", "23", "0.3"), time.Now()),
	)

	t.Run("list filters by name ignoring case", func(t *testing.T) {
		output, err := NewListFoodsUseCase(repo).Execute(ctx, ListFoodsInput{Name: "RICE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Foods) != 2 {
			t.Fatalf("expected 2 foods, got %d", len(output.Foods))
		}
		if output.Foods[0].Name != "Brown rice" {
			t.Errorf("expected foods ordered by name, got %q first", output.Foods[0].Name)
		}
	})

	t.Run("get unknown food", func(t *testing.T) {
		_, err := NewGetFoodUseCase(repo).Execute(ctx, GetFoodInput{FoodID: uuid.New()})

		var foodErr *domainerror.FoodError
		if !errors.As(err, &foodErr) || foodErr.Code != domainerror.ErrCodeFoodNotFound {
			t.Fatalf("expected food not found error, got %v", err)
		}
	})
}
