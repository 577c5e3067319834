// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// CreateAll creates every goal in a single transaction. Either all rows are stored or none.
	CreateAll(ctx context.Context, goals []*entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByOwnerAndType returns the active goal of the given type for the owner.
	// It returns nil, nil when the owner has no goal of that type.
	FindByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error)

	// FindByOwner retrieves all goals of the owner ordered DAILY, WEEKLY, MONTHLY.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error)

	// ExistsByOwnerAndType checks if the owner already has a goal of the given type.
	ExistsByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (bool, error)

	// Save updates an existing goal.
	Save(ctx context.Context, goal *entity.Goal) error

	// SaveAll updates every goal in a single transaction.
	SaveAll(ctx context.Context, goals []*entity.Goal) error
}
