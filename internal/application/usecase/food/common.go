// Package food contains food catalog use cases.
package food

import (
	"fmt"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// validateFood checks the name and nutrient values of a food.
func validateFood(name string, nutrients entity.Nutrients) error {
	if name == "" {
		return domainerror.NewFoodError(
			domainerror.ErrCodeFoodNameRequired,
			"food name is required",
			domainerror.ErrFoodNameRequired,
		)
	}
	if nutrients.IsNegative() {
		return domainerror.NewFoodError(
			domainerror.ErrCodeInvalidNutrientValue,
			"nutrient values must be zero or greater",
			domainerror.ErrInvalidNutrientValue,
		)
	}
	if nutrients.Rounded().Exceeds(entity.MaxCatalogValue) {
		return domainerror.NewFoodError(
			domainerror.ErrCodeInvalidNutrientValue,
			fmt.Sprintf("nutrient values must not exceed %s", entity.MaxCatalogValue),
			domainerror.ErrInvalidNutrientValue,
		)
	}
	return nil
}

func foodNotFoundError() error {
	return domainerror.NewFoodError(
		domainerror.ErrCodeFoodNotFound,
		"food not found",
		domainerror.ErrFoodNotFound,
	)
}

func foodNameConflictError() error {
	return domainerror.NewFoodError(
		domainerror.ErrCodeFoodNameAlreadyExists,
		"a food with this name already exists",
		domainerror.ErrFoodNameAlreadyExists,
	)
}
