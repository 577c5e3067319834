// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// FoodModel represents the foods table in the database.
// Nutrient columns hold values per 100 g / 100 ml.
type FoodModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(150);not null;index"`
	Calories  decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Protein   decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Carbs     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Fat       decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FoodModel.
func (FoodModel) TableName() string {
	return "foods"
}

// ToEntity converts a FoodModel to a domain Food entity.
func (m *FoodModel) ToEntity() *entity.Food {
	return &entity.Food{
		ID:   m.ID,
		Name: m.Name,
		Nutrients: entity.Nutrients{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FoodFromEntity creates a FoodModel from a domain Food entity.
func FoodFromEntity(food *entity.Food) *FoodModel {
	return &FoodModel{
		ID:        food.ID,
		Name:      food.Name,
		Calories:  food.Nutrients.Calories,
		Protein:   food.Nutrients.Protein,
		Carbs:     food.Nutrients.Carbs,
		Fat:       food.Nutrients.Fat,
		CreatedAt: food.CreatedAt,
		UpdatedAt: food.UpdatedAt,
	}
}
