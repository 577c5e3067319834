package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/persistence/model"
)

// mealRepository implements the adapter.MealRepository interface.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository instance.
func NewMealRepository(db *gorm.DB) adapter.MealRepository {
	return &mealRepository{
		db: db,
	}
}

// preloadItems keeps items in the order they were logged.
func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create stores a meal and its items in one transaction.
func (r *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(model.MealFromEntity(meal)).Error; err != nil {
			return err
		}
		items := model.MealItemsFromEntity(meal)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// FindByID retrieves a meal with its items.
func (r *mealRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error) {
	var mealModel model.MealModel
	result := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("id = ?", id).
		First(&mealModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMealNotFound
		}
		return nil, result.Error
	}
	return mealModel.ToEntity(), nil
}

// FindByOwnerAndDateRange retrieves the owner's meals with from <= occurred_at < to.
func (r *mealRepository) FindByOwnerAndDateRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	var mealModels []model.MealModel
	result := r.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("owner_id = ?", ownerID).
		Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC()).
		Order("occurred_at ASC").
		Find(&mealModels)
	if result.Error != nil {
		return nil, result.Error
	}

	meals := make([]*entity.Meal, len(mealModels))
	for i := range mealModels {
		meals[i] = mealModels[i].ToEntity()
	}
	return meals, nil
}

// Update stores the meal fields and replaces its items in one transaction.
func (r *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.MealModel{}).
			Where("id = ?", meal.ID).
			Updates(map[string]interface{}{
				"type":        string(meal.Type),
				"occurred_at": meal.OccurredAt.UTC(),
				"notes":       meal.Notes,
				"updated_at":  meal.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrMealNotFound
		}

		if err := tx.Where("meal_id = ?", meal.ID).Delete(&model.MealItemModel{}).Error; err != nil {
			return err
		}
		items := model.MealItemsFromEntity(meal)
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Delete removes a meal and its items in one transaction.
func (r *mealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&model.MealItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.MealModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrMealNotFound
		}
		return nil
	})
}
