// Package meal contains meal logging use cases.
package meal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
)

// DeleteMealInput represents the input for meal deletion.
type DeleteMealInput struct {
	MealID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteMealOutput represents the output of meal deletion.
type DeleteMealOutput struct {
	Success bool
}

// DeleteMealUseCase handles meal deletion.
type DeleteMealUseCase struct {
	mealRepo adapter.MealRepository
}

// NewDeleteMealUseCase creates a new DeleteMealUseCase instance.
func NewDeleteMealUseCase(mealRepo adapter.MealRepository) *DeleteMealUseCase {
	return &DeleteMealUseCase{
		mealRepo: mealRepo,
	}
}

// Execute performs the meal deletion.
func (uc *DeleteMealUseCase) Execute(ctx context.Context, input DeleteMealInput) (*DeleteMealOutput, error) {
	if _, err := findOwnedMeal(ctx, uc.mealRepo, input.MealID, input.OwnerID); err != nil {
		return nil, err
	}

	if err := uc.mealRepo.Delete(ctx, input.MealID); err != nil {
		return nil, fmt.Errorf("failed to delete meal: %w", err)
	}

	return &DeleteMealOutput{
		Success: true,
	}, nil
}
