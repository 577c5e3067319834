// Package meal contains meal logging use cases.
package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
)

// UpdateMealInput represents the input for meal update. Items replace the current ones.
type UpdateMealInput struct {
	MealID     uuid.UUID
	OwnerID    uuid.UUID
	Type       entity.MealType
	OccurredAt time.Time
	Notes      string
	Items      []MealItemInput
}

// UpdateMealOutput represents the output of meal update.
type UpdateMealOutput struct {
	Meal entity.MealWithTotals
}

// UpdateMealUseCase handles meal update logic.
type UpdateMealUseCase struct {
	mealRepo adapter.MealRepository
	catalog  adapter.FoodCatalog
	totaler  MealTotaler
	clock    adapter.Clock
}

// NewUpdateMealUseCase creates a new UpdateMealUseCase instance.
func NewUpdateMealUseCase(mealRepo adapter.MealRepository, catalog adapter.FoodCatalog, totaler MealTotaler, clock adapter.Clock) *UpdateMealUseCase {
	return &UpdateMealUseCase{
		mealRepo: mealRepo,
		catalog:  catalog,
		totaler:  totaler,
		clock:    clock,
	}
}

// Execute performs the meal update.
func (uc *UpdateMealUseCase) Execute(ctx context.Context, input UpdateMealInput) (*UpdateMealOutput, error) {
	meal, err := findOwnedMeal(ctx, uc.mealRepo, input.MealID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	items, err := validateMeal(ctx, uc.catalog, input.Type, input.Items)
	if err != nil {
		return nil, err
	}

	meal.Type = input.Type
	meal.OccurredAt = input.OccurredAt.UTC()
	meal.Notes = input.Notes
	meal.ReplaceItems(items)
	meal.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.mealRepo.Update(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to update meal: %w", err)
	}

	result, err := withTotals(ctx, uc.totaler, meal)
	if err != nil {
		return nil, err
	}

	return &UpdateMealOutput{
		Meal: result,
	}, nil
}
