package food

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

type memoryFoodRepository struct {
	foods map[uuid.UUID]*entity.Food
}

func newMemoryFoodRepository(foods ...*entity.Food) *memoryFoodRepository {
	r := &memoryFoodRepository{foods: make(map[uuid.UUID]*entity.Food)}
	for _, f := range foods {
		clone := *f
		r.foods[f.ID] = &clone
	}
	return r
}

func (r *memoryFoodRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	f, ok := r.foods[id]
	if !ok {
		return nil, domainerror.ErrFoodNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *memoryFoodRepository) Create(_ context.Context, food *entity.Food) error {
	clone := *food
	r.foods[food.ID] = &clone
	return nil
}

func (r *memoryFoodRepository) Update(_ context.Context, food *entity.Food) error {
	clone := *food
	r.foods[food.ID] = &clone
	return nil
}

func (r *memoryFoodRepository) List(_ context.Context, filter adapter.FoodFilter) ([]*entity.Food, error) {
	var foods []*entity.Food
	for _, f := range r.foods {
		if strings.Contains(strings.ToLower(f.Name), strings.ToLower(filter.Name)) {
			foods = append(foods, f)
		}
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Name < foods[j].Name })
	return foods, nil
}

func (r *memoryFoodRepository) ExistsByName(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	for _, f := range r.foods {
		if f.ID != excludeID && strings.EqualFold(f.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type recordingInvalidator struct {
	invalidated []uuid.UUID
}

func (i *recordingInvalidator) Invalidate(_ context.Context, id uuid.UUID) {
	i.invalidated = append(i.invalidated, id)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testClock = fixedClock{now: time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)}
