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

// CreateMealInput represents the input for meal creation.
type CreateMealInput struct {
	OwnerID    uuid.UUID
	Type       entity.MealType
	OccurredAt time.Time
	Notes      string
	Items      []MealItemInput
}

// CreateMealOutput represents the output of meal creation.
type CreateMealOutput struct {
	Meal entity.MealWithTotals
}

// CreateMealUseCase handles meal logging.
type CreateMealUseCase struct {
	mealRepo adapter.MealRepository
	catalog  adapter.FoodCatalog
	totaler  MealTotaler
	clock    adapter.Clock
}

// NewCreateMealUseCase creates a new CreateMealUseCase instance.
func NewCreateMealUseCase(mealRepo adapter.MealRepository, catalog adapter.FoodCatalog, totaler MealTotaler, clock adapter.Clock) *CreateMealUseCase {
	return &CreateMealUseCase{
		mealRepo: mealRepo,
		catalog:  catalog,
		totaler:  totaler,
		clock:    clock,
	}
}

// Execute performs the meal creation.
func (uc *CreateMealUseCase) Execute(ctx context.Context, input CreateMealInput) (*CreateMealOutput, error) {
	items, err := validateMeal(ctx, uc.catalog, input.Type, input.Items)
	if err != nil {
		return nil, err
	}

	meal := entity.NewMeal(input.OwnerID, input.Type, input.OccurredAt, input.Notes, items, uc.clock.Now())

	if err := uc.mealRepo.Create(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	result, err := withTotals(ctx, uc.totaler, meal)
	if err != nil {
		return nil, err
	}

	return &CreateMealOutput{
		Meal: result,
	}, nil
}
