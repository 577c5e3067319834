// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/persistence/model"
)

// hierarchyOrder sorts goals DAILY, WEEKLY, MONTHLY.
const hierarchyOrder = "CASE type WHEN 'DAILY' THEN 1 WHEN 'WEEKLY' THEN 2 WHEN 'MONTHLY' THEN 3 ELSE 4 END"

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).Create(model.GoalFromEntity(goal))
	if result.Error != nil {
		return translateGoalError(result.Error)
	}
	return nil
}

// CreateAll creates every goal inside one transaction.
func (r *goalRepository) CreateAll(ctx context.Context, goals []*entity.Goal) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, goal := range goals {
			if err := tx.Create(model.GoalFromEntity(goal)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateGoalError(err)
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByOwnerAndType retrieves the active goal of a type for the owner.
func (r *goalRepository) FindByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND type = ?", ownerID, string(goalType)).
		Order("created_at ASC").
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByOwner retrieves all goals of the owner.
func (r *goalRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(hierarchyOrder).
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// ExistsByOwnerAndType checks if the owner has a goal of the given type.
func (r *goalRepository) ExistsByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("owner_id = ? AND type = ?", ownerID, string(goalType)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Save updates an existing goal in the database.
func (r *goalRepository) Save(ctx context.Context, goal *entity.Goal) error {
	return r.SaveAll(ctx, []*entity.Goal{goal})
}

// SaveAll updates every goal inside one transaction.
func (r *goalRepository) SaveAll(ctx context.Context, goals []*entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, goal := range goals {
			result := tx.Model(&model.GoalModel{}).
				Where("id = ?", goal.ID).
				Updates(map[string]interface{}{
					"calories_target": goal.Targets.Calories,
					"protein_target":  goal.Targets.Protein,
					"carbs_target":    goal.Targets.Carbs,
					"fat_target":      goal.Targets.Fat,
					"updated_at":      goal.UpdatedAt,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrGoalNotFound
			}
		}
		return nil
	})
}

// translateGoalError maps unique index violations on (owner_id, type) to the domain conflict.
func translateGoalError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrGoalAlreadyExists
	}
	return err
}
