// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// MealModel represents the meals table in the database.
type MealModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_meals_owner_occurred_at,priority:1"`
	Type       string          `gorm:"type:varchar(20);not null"`
	OccurredAt time.Time       `gorm:"not null;index:idx_meals_owner_occurred_at,priority:2"`
	Notes      string          `gorm:"type:text"`
	Items      []MealItemModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MealModel.
func (MealModel) TableName() string {
	return "meals"
}

// MealItemModel represents the meal_items table in the database.
type MealItemModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MealID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit     string          `gorm:"type:varchar(20);not null"`
	Notes    string          `gorm:"type:text"`
	Position int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the MealItemModel.
func (MealItemModel) TableName() string {
	return "meal_items"
}

// ToEntity converts a MealModel and its loaded items to a domain Meal entity.
func (m *MealModel) ToEntity() *entity.Meal {
	items := make([]entity.MealItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.MealItem{
			ID:       item.ID,
			MealID:   item.MealID,
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Unit:     entity.MeasurementUnit(item.Unit),
			Notes:    item.Notes,
		}
	}

	return &entity.Meal{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Type:       entity.MealType(m.Type),
		OccurredAt: m.OccurredAt.UTC(),
		Notes:      m.Notes,
		Items:      items,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// MealFromEntity creates a MealModel without items from a domain Meal entity.
func MealFromEntity(meal *entity.Meal) *MealModel {
	return &MealModel{
		ID:         meal.ID,
		OwnerID:    meal.OwnerID,
		Type:       string(meal.Type),
		OccurredAt: meal.OccurredAt.UTC(),
		Notes:      meal.Notes,
		CreatedAt:  meal.CreatedAt,
		UpdatedAt:  meal.UpdatedAt,
	}
}

// MealItemsFromEntity creates the item models of a meal, keeping their order.
func MealItemsFromEntity(meal *entity.Meal) []MealItemModel {
	items := make([]MealItemModel, len(meal.Items))
	for i, item := range meal.Items {
		items[i] = MealItemModel{
			ID:       item.ID,
			MealID:   meal.ID,
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
			Unit:     string(item.Unit),
			Notes:    item.Notes,
			Position: i,
		}
	}
	return items
}
