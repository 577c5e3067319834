package meal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

type memoryMealRepository struct {
	meals   map[uuid.UUID]*entity.Meal
	deleted []uuid.UUID
}

func newMemoryMealRepository() *memoryMealRepository {
	return &memoryMealRepository{meals: make(map[uuid.UUID]*entity.Meal)}
}

func (r *memoryMealRepository) Create(_ context.Context, meal *entity.Meal) error {
	r.meals[meal.ID] = meal
	return nil
}

func (r *memoryMealRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	m, ok := r.meals[id]
	if !ok {
		return nil, domainerror.ErrMealNotFound
	}
	return m, nil
}

func (r *memoryMealRepository) FindByOwnerAndDateRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, m := range r.meals {
		if m.OwnerID == ownerID && !m.OccurredAt.Before(from) && m.OccurredAt.Before(to) {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (r *memoryMealRepository) Update(_ context.Context, meal *entity.Meal) error {
	r.meals[meal.ID] = meal
	return nil
}

func (r *memoryMealRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.meals, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type memoryCatalog map[uuid.UUID]*entity.Food

func (c memoryCatalog) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	f, ok := c[id]
	if !ok {
		return nil, domainerror.ErrFoodNotFound
	}
	return f, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testClock = fixedClock{now: time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)}
