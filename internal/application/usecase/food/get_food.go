// Package food contains food catalog use cases.
package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// GetFoodInput represents the input for getting a food.
type GetFoodInput struct {
	FoodID uuid.UUID
}

// GetFoodOutput represents the output of getting a food.
type GetFoodOutput struct {
	Food *entity.Food
}

// GetFoodUseCase reads a food through the catalog.
type GetFoodUseCase struct {
	catalog adapter.FoodCatalog
}

// NewGetFoodUseCase creates a new GetFoodUseCase instance.
func NewGetFoodUseCase(catalog adapter.FoodCatalog) *GetFoodUseCase {
	return &GetFoodUseCase{
		catalog: catalog,
	}
}

// Execute performs the food retrieval.
func (uc *GetFoodUseCase) Execute(ctx context.Context, input GetFoodInput) (*GetFoodOutput, error) {
	food, err := uc.catalog.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, foodNotFoundError()
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	return &GetFoodOutput{
		Food: food,
	}, nil
}
