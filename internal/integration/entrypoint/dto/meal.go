// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// MealItemRequest represents one item of a meal request.
type MealItemRequest struct {
	FoodID   string           `json:"food_id" binding:"required,uuid"`
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
	Unit     string           `json:"unit" binding:"required,oneof=GRAM MILLILITER UNIT SLICE CUP TABLESPOON PIECE"`
	Notes    string           `json:"notes,omitempty" binding:"omitempty,max=255"`
}

// MealRequest represents the request body for meal creation and update.
type MealRequest struct {
	Type       string            `json:"type" binding:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
	OccurredAt time.Time         `json:"occurred_at" binding:"required"`
	Notes      string            `json:"notes,omitempty" binding:"omitempty,max=255"`
	Items      []MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListMealsQuery represents the query parameters for listing meals.
type ListMealsQuery struct {
	StartDate string `form:"start" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// NutrientTotalsResponse holds computed nutrient totals.
type NutrientTotalsResponse struct {
	Calories decimal.Decimal `json:"calories"`
	Protein  decimal.Decimal `json:"protein"`
	Carbs    decimal.Decimal `json:"carbs"`
	Fat      decimal.Decimal `json:"fat"`
}

// MealItemResponse represents a meal item in API responses.
type MealItemResponse struct {
	ID       string          `json:"id"`
	FoodID   string          `json:"food_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Notes    string          `json:"notes,omitempty"`
}

// MealResponse represents a single meal in API responses.
type MealResponse struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id"`
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Notes      string                 `json:"notes,omitempty"`
	Items      []MealItemResponse     `json:"items"`
	Totals     NutrientTotalsResponse `json:"totals"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// MealListResponse represents the response for listing meals.
type MealListResponse struct {
	Meals []MealResponse `json:"meals"`
}

// ToMealResponse converts a meal with totals to a MealResponse DTO.
func ToMealResponse(m entity.MealWithTotals) MealResponse {
	items := make([]MealItemResponse, len(m.Meal.Items))
	for i, item := range m.Meal.Items {
		items[i] = MealItemResponse{
			ID:       item.ID.String(),
			FoodID:   item.FoodID.String(),
			Quantity: item.Quantity,
			Unit:     string(item.Unit),
			Notes:    item.Notes,
		}
	}

	return MealResponse{
		ID:         m.Meal.ID.String(),
		UserID:     m.Meal.OwnerID.String(),
		Type:       string(m.Meal.Type),
		OccurredAt: m.Meal.OccurredAt,
		Notes:      m.Meal.Notes,
		Items:      items,
		Totals: NutrientTotalsResponse{
			Calories: m.Totals.Calories,
			Protein:  m.Totals.Protein,
			Carbs:    m.Totals.Carbs,
			Fat:      m.Totals.Fat,
		},
		CreatedAt: m.Meal.CreatedAt,
		UpdatedAt: m.Meal.UpdatedAt,
	}
}

// ToMealListResponse converts meals with totals to a MealListResponse DTO.
func ToMealListResponse(meals []entity.MealWithTotals) MealListResponse {
	response := MealListResponse{
		Meals: make([]MealResponse, len(meals)),
	}
	for i, m := range meals {
		response.Meals[i] = ToMealResponse(m)
	}
	return response
}
