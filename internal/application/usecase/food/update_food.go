// Package food contains food catalog use cases.
package food

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// UpdateFoodInput represents the input for food update.
type UpdateFoodInput struct {
	FoodID    uuid.UUID
	Name      string
	Nutrients entity.Nutrients
}

// UpdateFoodOutput represents the output of food update.
type UpdateFoodOutput struct {
	Food *entity.Food
}

// UpdateFoodUseCase handles food update logic.
type UpdateFoodUseCase struct {
	foodRepo    adapter.FoodRepository
	invalidator adapter.FoodCacheInvalidator
	clock       adapter.Clock
}

// NewUpdateFoodUseCase creates a new UpdateFoodUseCase instance.
// invalidator may be nil when no catalog cache is configured.
func NewUpdateFoodUseCase(foodRepo adapter.FoodRepository, invalidator adapter.FoodCacheInvalidator, clock adapter.Clock) *UpdateFoodUseCase {
	return &UpdateFoodUseCase{
		foodRepo:    foodRepo,
		invalidator: invalidator,
		clock:       clock,
	}
}

// Execute performs the food update.
func (uc *UpdateFoodUseCase) Execute(ctx context.Context, input UpdateFoodInput) (*UpdateFoodOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateFood(name, input.Nutrients); err != nil {
		return nil, err
	}

	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, foodNotFoundError()
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	if !strings.EqualFold(food.Name, name) {
		exists, err := uc.foodRepo.ExistsByName(ctx, name, food.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check food name: %w", err)
		}
		if exists {
			return nil, foodNameConflictError()
		}
	}

	food.Name = name
	food.Nutrients = input.Nutrients.Rounded()
	food.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.foodRepo.Update(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx, food.ID)
	}

	return &UpdateFoodOutput{
		Food: food,
	}, nil
}
