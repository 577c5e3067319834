// Package meal contains meal logging use cases.
package meal

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
)

// GetMealInput represents the input for getting a meal.
type GetMealInput struct {
	MealID  uuid.UUID
	OwnerID uuid.UUID
}

// GetMealOutput represents the output of getting a meal.
type GetMealOutput struct {
	Meal entity.MealWithTotals
}

// GetMealUseCase handles getting a meal by ID.
type GetMealUseCase struct {
	mealRepo adapter.MealRepository
	totaler  MealTotaler
}

// NewGetMealUseCase creates a new GetMealUseCase instance.
func NewGetMealUseCase(mealRepo adapter.MealRepository, totaler MealTotaler) *GetMealUseCase {
	return &GetMealUseCase{
		mealRepo: mealRepo,
		totaler:  totaler,
	}
}

// Execute performs the meal retrieval.
func (uc *GetMealUseCase) Execute(ctx context.Context, input GetMealInput) (*GetMealOutput, error) {
	meal, err := findOwnedMeal(ctx, uc.mealRepo, input.MealID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	result, err := withTotals(ctx, uc.totaler, meal)
	if err != nil {
		return nil, err
	}

	return &GetMealOutput{
		Meal: result,
	}, nil
}
