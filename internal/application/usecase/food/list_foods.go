// Package food contains food catalog use cases.
package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
)

// ListFoodsInput represents the input for listing foods.
type ListFoodsInput struct {
	Name string // Optional, matched case-insensitively
}

// ListFoodsOutput represents the output of listing foods.
type ListFoodsOutput struct {
	Foods []*entity.Food
}

// ListFoodsUseCase handles listing the food catalog.
type ListFoodsUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewListFoodsUseCase creates a new ListFoodsUseCase instance.
func NewListFoodsUseCase(foodRepo adapter.FoodRepository) *ListFoodsUseCase {
	return &ListFoodsUseCase{
		foodRepo: foodRepo,
	}
}

// Execute performs the food listing.
func (uc *ListFoodsUseCase) Execute(ctx context.Context, input ListFoodsInput) (*ListFoodsOutput, error) {
	foods, err := uc.foodRepo.List(ctx, adapter.FoodFilter{
		Name: strings.TrimSpace(input.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	return &ListFoodsOutput{
		Foods: foods,
	}, nil
}
