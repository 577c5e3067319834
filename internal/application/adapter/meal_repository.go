package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// MealRepository defines the interface for meal persistence operations.
type MealRepository interface {
	// Create stores a meal and its items.
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByID retrieves a meal with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// FindByOwnerAndDateRange returns the owner's meals with from <= OccurredAt < to, items populated,
	// ordered by OccurredAt.
	FindByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Meal, error)

	// Update stores the meal fields and replaces its items.
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete removes a meal and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
