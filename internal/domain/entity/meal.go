// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealType represents the kind of meal that was logged.
type MealType string

const (
	MealTypeBreakfast MealType = "BREAKFAST"
	MealTypeLunch     MealType = "LUNCH"
	MealTypeDinner    MealType = "DINNER"
	MealTypeSnack     MealType = "SNACK"
)

// IsValid reports whether t is a known meal type.
func (t MealType) IsValid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MeasurementUnit represents the unit a meal item quantity is expressed in.
type MeasurementUnit string

const (
	UnitGram       MeasurementUnit = "GRAM"
	UnitMilliliter MeasurementUnit = "MILLILITER"
	UnitUnit       MeasurementUnit = "UNIT"
	UnitSlice      MeasurementUnit = "SLICE"
	UnitCup        MeasurementUnit = "CUP"
	UnitTablespoon MeasurementUnit = "TABLESPOON"
	UnitPiece      MeasurementUnit = "PIECE"
)

// IsValid reports whether u is a known measurement unit.
func (u MeasurementUnit) IsValid() bool {
	switch u {
	case UnitGram, UnitMilliliter, UnitUnit, UnitSlice, UnitCup, UnitTablespoon, UnitPiece:
		return true
	}
	return false
}

// Meal represents a logged eating event.
type Meal struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Type       MealType
	OccurredAt time.Time
	Notes      string
	Items      []MealItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MealItem is a single food entry inside a meal.
type MealItem struct {
	ID       uuid.UUID
	MealID   uuid.UUID
	FoodID   uuid.UUID
	Quantity decimal.Decimal
	Unit     MeasurementUnit
	Notes    string
}

// NewMeal creates a new Meal entity stamped with now. Items receive their own IDs.
func NewMeal(ownerID uuid.UUID, mealType MealType, occurredAt time.Time, notes string, items []MealItem, now time.Time) *Meal {
	now = now.UTC()
	meal := &Meal{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Type:       mealType,
		OccurredAt: occurredAt.UTC(),
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	meal.ReplaceItems(items)
	return meal
}

// ReplaceItems assigns fresh IDs to items and attaches them to the meal.
func (m *Meal) ReplaceItems(items []MealItem) {
	m.Items = make([]MealItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.MealID = m.ID
		m.Items[i] = item
	}
}

// MealWithTotals is a meal together with its computed nutrient totals.
type MealWithTotals struct {
	Meal   *Meal
	Totals Nutrients
}
