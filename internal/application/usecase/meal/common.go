// Package meal contains meal logging use cases.
package meal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// MealTotaler computes display totals for meals.
type MealTotaler interface {
	Totals(ctx context.Context, meals []*entity.Meal) ([]entity.MealWithTotals, error)
}

// MealItemInput represents one item of a meal write.
type MealItemInput struct {
	FoodID   uuid.UUID
	Quantity decimal.Decimal
	Unit     entity.MeasurementUnit
	Notes    string
}

// validateMeal checks the meal type and every item, and that each referenced food exists.
func validateMeal(ctx context.Context, catalog adapter.FoodCatalog, mealType entity.MealType, items []MealItemInput) ([]entity.MealItem, error) {
	if !mealType.IsValid() {
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeInvalidMealType,
			"meal type must be BREAKFAST, LUNCH, DINNER or SNACK",
			domainerror.ErrInvalidMealType,
		)
	}

	if len(items) == 0 {
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeMealWithoutItems,
			"meal must contain at least one item",
			domainerror.ErrMealWithoutItems,
		)
	}

	checked := make(map[uuid.UUID]bool, len(items))
	result := make([]entity.MealItem, 0, len(items))
	for i, item := range items {
		quantity := item.Quantity.Round(entity.NutrientScale)
		if !quantity.IsPositive() || quantity.GreaterThan(entity.MaxCatalogValue) {
			return nil, domainerror.NewMealError(
				domainerror.ErrCodeInvalidQuantity,
				fmt.Sprintf("item %d: quantity must be greater than zero and at most %s", i, entity.MaxCatalogValue),
				domainerror.ErrInvalidQuantity,
			)
		}
		if !item.Unit.IsValid() {
			return nil, domainerror.NewMealError(
				domainerror.ErrCodeInvalidUnit,
				fmt.Sprintf("item %d: invalid measurement unit %q", i, item.Unit),
				domainerror.ErrInvalidUnit,
			)
		}

		if !checked[item.FoodID] {
			if _, err := catalog.FindByID(ctx, item.FoodID); err != nil {
				if errors.Is(err, domainerror.ErrFoodNotFound) {
					return nil, domainerror.NewMealError(
						domainerror.ErrCodeMealFoodNotFound,
						fmt.Sprintf("item %d: food %s not found", i, item.FoodID),
						domainerror.ErrFoodNotFound,
					)
				}
				return nil, fmt.Errorf("failed to find food: %w", err)
			}
			checked[item.FoodID] = true
		}

		result = append(result, entity.MealItem{
			FoodID:   item.FoodID,
			Quantity: quantity,
			Unit:     item.Unit,
			Notes:    item.Notes,
		})
	}

	return result, nil
}

// findOwnedMeal loads a meal and hides meals of other owners.
func findOwnedMeal(ctx context.Context, mealRepo adapter.MealRepository, mealID, ownerID uuid.UUID) (*entity.Meal, error) {
	meal, err := mealRepo.FindByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMealNotFound) {
			return nil, mealNotFoundError()
		}
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}
	if meal.OwnerID != ownerID {
		return nil, mealNotFoundError()
	}
	return meal, nil
}

// withTotals computes the totals of a single meal.
func withTotals(ctx context.Context, totaler MealTotaler, meal *entity.Meal) (entity.MealWithTotals, error) {
	result, err := totaler.Totals(ctx, []*entity.Meal{meal})
	if err != nil {
		return entity.MealWithTotals{}, err
	}
	return result[0], nil
}

func mealNotFoundError() error {
	return domainerror.NewMealError(
		domainerror.ErrCodeMealNotFound,
		"meal not found",
		domainerror.ErrMealNotFound,
	)
}
