// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Food represents a catalog food with its nutrient profile per 100 g / 100 ml.
type Food struct {
	ID        uuid.UUID
	Name      string
	Nutrients Nutrients
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFood creates a new Food entity stamped with now.
func NewFood(name string, nutrients Nutrients, now time.Time) *Food {
	now = now.UTC()

	return &Food{
		ID:        uuid.New(),
		Name:      name,
		Nutrients: nutrients.Rounded(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
