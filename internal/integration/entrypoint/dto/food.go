// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// FoodRequest represents the request body for food creation and update.
// Nutrient values are per 100 g / 100 ml.
type FoodRequest struct {
	Name     string           `json:"name" binding:"required,max=150"`
	Calories *decimal.Decimal `json:"calories" binding:"required"`
	Protein  *decimal.Decimal `json:"protein" binding:"required"`
	Carbs    *decimal.Decimal `json:"carbs" binding:"required"`
	Fat      *decimal.Decimal `json:"fat" binding:"required"`
}

// ToNutrients converts the request values to domain nutrients.
func (r FoodRequest) ToNutrients() entity.Nutrients {
	return entity.Nutrients{
		Calories: *r.Calories,
		Protein:  *r.Protein,
		Carbs:    *r.Carbs,
		Fat:      *r.Fat,
	}
}

// FoodResponse represents a single food in API responses.
type FoodResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Calories  decimal.Decimal `json:"calories"`
	Protein   decimal.Decimal `json:"protein"`
	Carbs     decimal.Decimal `json:"carbs"`
	Fat       decimal.Decimal `json:"fat"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FoodListResponse represents the response for listing foods.
type FoodListResponse struct {
	Foods []FoodResponse `json:"foods"`
}

// ToFoodResponse converts a domain Food entity to a FoodResponse DTO.
func ToFoodResponse(f *entity.Food) FoodResponse {
	return FoodResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Calories:  f.Nutrients.Calories,
		Protein:   f.Nutrients.Protein,
		Carbs:     f.Nutrients.Carbs,
		Fat:       f.Nutrients.Fat,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// ToFoodListResponse converts foods to a FoodListResponse DTO.
func ToFoodListResponse(foods []*entity.Food) FoodListResponse {
	response := FoodListResponse{
		Foods: make([]FoodResponse, len(foods)),
	}
	for i, f := range foods {
		response.Foods[i] = ToFoodResponse(f)
	}
	return response
}
