package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// FoodCatalog resolves the nutrient profile of a food.
type FoodCatalog interface {
	// FindByID returns the food or domainerror.ErrFoodNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
}

// FoodFilter narrows a food listing.
type FoodFilter struct {
	// Name matches foods whose name contains it, case-insensitively.
	Name string
}

// FoodRepository defines the interface for food catalog persistence operations.
type FoodRepository interface {
	FoodCatalog

	// Create stores a new food.
	Create(ctx context.Context, food *entity.Food) error

	// Update stores the changed fields of a food.
	Update(ctx context.Context, food *entity.Food) error

	// List returns the foods matching filter ordered by name.
	List(ctx context.Context, filter FoodFilter) ([]*entity.Food, error)

	// ExistsByName checks whether a food other than excludeID uses name, case-insensitively.
	// Pass uuid.Nil to check against every food.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

// FoodCacheInvalidator drops cached catalog entries after a food changes.
type FoodCacheInvalidator interface {
	Invalidate(ctx context.Context, id uuid.UUID)
}
