package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/persistence/model"
)

// likeEscaper makes a user filter match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// foodRepository implements the adapter.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository instance.
func NewFoodRepository(db *gorm.DB) adapter.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// FindByID retrieves a food by its ID.
func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodModel model.FoodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&foodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFoodNotFound
		}
		return nil, result.Error
	}
	return foodModel.ToEntity(), nil
}

// Create creates a new food in the database.
func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	return r.db.WithContext(ctx).Create(model.FoodFromEntity(food)).Error
}

// Update updates name and nutrient values of a food.
func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	result := r.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("id = ?", food.ID).
		Updates(map[string]interface{}{
			"name":       food.Name,
			"calories":   food.Nutrients.Calories,
			"protein":    food.Nutrients.Protein,
			"carbs":      food.Nutrients.Carbs,
			"fat":        food.Nutrients.Fat,
			"updated_at": food.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFoodNotFound
	}
	return nil
}

// List retrieves foods whose name contains the filter, ordered by name.
func (r *foodRepository) List(ctx context.Context, filter adapter.FoodFilter) ([]*entity.Food, error) {
	query := r.db.WithContext(ctx).Model(&model.FoodModel{})
	if filter.Name != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Name)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	var foodModels []model.FoodModel
	if err := query.Order("name ASC").Find(&foodModels).Error; err != nil {
		return nil, err
	}

	foods := make([]*entity.Food, len(foodModels))
	for i := range foodModels {
		foods[i] = foodModels[i].ToEntity()
	}
	return foods, nil
}

// ExistsByName checks if a food other than excludeID already uses the name.
func (r *foodRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
