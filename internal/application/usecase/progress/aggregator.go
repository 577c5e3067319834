// Package progress contains the goal progress use cases.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/domain/valueobject"
)

// MealAggregator sums the nutrient contributions of logged meals.
type MealAggregator struct {
	mealRepo    adapter.MealRepository
	foodCatalog adapter.FoodCatalog
}

// NewMealAggregator creates a new MealAggregator instance.
func NewMealAggregator(mealRepo adapter.MealRepository, foodCatalog adapter.FoodCatalog) *MealAggregator {
	return &MealAggregator{
		mealRepo:    mealRepo,
		foodCatalog: foodCatalog,
	}
}

// Sum returns the total nutrients of the owner's meals inside period.
// An empty period yields zero totals.
func (a *MealAggregator) Sum(ctx context.Context, ownerID uuid.UUID, period valueobject.Period) (entity.Nutrients, error) {
	from, to := period.Window()

	meals, err := a.mealRepo.FindByOwnerAndDateRange(ctx, ownerID, from, to)
	if err != nil {
		return entity.Nutrients{}, fmt.Errorf("failed to find meals: %w", err)
	}

	lookup := a.newLookup()
	total := entity.ZeroNutrients()
	for _, meal := range meals {
		mealTotal, err := lookup.mealTotals(ctx, meal)
		if err != nil {
			return entity.Nutrients{}, err
		}
		total = total.Add(mealTotal)
	}

	return total, nil
}

// Totals computes the nutrient totals of each meal.
func (a *MealAggregator) Totals(ctx context.Context, meals []*entity.Meal) ([]entity.MealWithTotals, error) {
	lookup := a.newLookup()
	result := make([]entity.MealWithTotals, 0, len(meals))
	for _, meal := range meals {
		totals, err := lookup.mealTotals(ctx, meal)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.MealWithTotals{Meal: meal, Totals: totals})
	}
	return result, nil
}

func (a *MealAggregator) newLookup() *foodLookup {
	return &foodLookup{
		catalog: a.foodCatalog,
		foods:   make(map[uuid.UUID]*entity.Food),
	}
}

// foodLookup memoizes catalog reads for the duration of one aggregation.
type foodLookup struct {
	catalog adapter.FoodCatalog
	foods   map[uuid.UUID]*entity.Food
}

func (l *foodLookup) find(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	if food, ok := l.foods[id]; ok {
		return food, nil
	}

	food, err := l.catalog.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, domainerror.NewMealError(
				domainerror.ErrCodeMealFoodNotFound,
				fmt.Sprintf("food %s referenced by a meal item was not found", id),
				domainerror.ErrFoodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find food %s: %w", id, err)
	}

	l.foods[id] = food
	return food, nil
}

func (l *foodLookup) mealTotals(ctx context.Context, meal *entity.Meal) (entity.Nutrients, error) {
	total := entity.ZeroNutrients()
	for _, item := range meal.Items {
		food, err := l.find(ctx, item.FoodID)
		if err != nil {
			return entity.Nutrients{}, err
		}
		total = total.Add(entity.NutrientsForPortion(food.Nutrients, item.Quantity))
	}
	return total, nil
}
