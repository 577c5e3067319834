// Package food contains food catalog use cases.
package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
)

// CreateFoodInput represents the input for food creation.
type CreateFoodInput struct {
	Name      string
	Nutrients entity.Nutrients // per 100 g / 100 ml
}

// CreateFoodOutput represents the output of food creation.
type CreateFoodOutput struct {
	Food *entity.Food
}

// CreateFoodUseCase handles food creation logic.
type CreateFoodUseCase struct {
	foodRepo adapter.FoodRepository
	clock    adapter.Clock
}

// NewCreateFoodUseCase creates a new CreateFoodUseCase instance.
func NewCreateFoodUseCase(foodRepo adapter.FoodRepository, clock adapter.Clock) *CreateFoodUseCase {
	return &CreateFoodUseCase{
		foodRepo: foodRepo,
		clock:    clock,
	}
}

// Execute performs the food creation.
func (uc *CreateFoodUseCase) Execute(ctx context.Context, input CreateFoodInput) (*CreateFoodOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateFood(name, input.Nutrients); err != nil {
		return nil, err
	}

	exists, err := uc.foodRepo.ExistsByName(ctx, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check food name: %w", err)
	}
	if exists {
		return nil, foodNameConflictError()
	}

	food := entity.NewFood(name, input.Nutrients, uc.clock.Now())

	if err := uc.foodRepo.Create(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	return &CreateFoodOutput{
		Food: food,
	}, nil
}
