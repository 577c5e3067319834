package progress

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

type memoryMealRepository struct {
	meals []*entity.Meal
}

func (r *memoryMealRepository) Create(_ context.Context, meal *entity.Meal) error {
	r.meals = append(r.meals, meal)
	return nil
}

func (r *memoryMealRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	for _, m := range r.meals {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domainerror.ErrMealNotFound
}

func (r *memoryMealRepository) FindByOwnerAndDateRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, m := range r.meals {
		if m.OwnerID == ownerID && !m.OccurredAt.Before(from) && m.OccurredAt.Before(to) {
			meals = append(meals, m)
		}
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].OccurredAt.Before(meals[j].OccurredAt) })
	return meals, nil
}

func (r *memoryMealRepository) Update(context.Context, *entity.Meal) error {
	return errors.New("not implemented")
}

func (r *memoryMealRepository) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

// countingCatalog records how many times each food was read.
type countingCatalog struct {
	foods map[uuid.UUID]*entity.Food
	reads map[uuid.UUID]int
}

func newCountingCatalog(foods ...*entity.Food) *countingCatalog {
	c := &countingCatalog{
		foods: make(map[uuid.UUID]*entity.Food),
		reads: make(map[uuid.UUID]int),
	}
	for _, f := range foods {
		c.foods[f.ID] = f
	}
	return c
}

func (c *countingCatalog) FindByID(_ context.Context, id uuid.UUID) (*entity.Food, error) {
	c.reads[id]++
	food, ok := c.foods[id]
	if !ok {
		return nil, domainerror.ErrFoodNotFound
	}
	return food, nil
}

type memoryGoalRepository struct {
	goals []*entity.Goal
}

func (r *memoryGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *memoryGoalRepository) CreateAll(_ context.Context, goals []*entity.Goal) error {
	r.goals = append(r.goals, goals...)
	return nil
}

func (r *memoryGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *memoryGoalRepository) FindByOwnerAndType(_ context.Context, ownerID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.OwnerID == ownerID && g.Type == goalType {
			return g, nil
		}
	}
	return nil, nil
}

func (r *memoryGoalRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.OwnerID == ownerID {
			goals = append(goals, g)
		}
	}
	return goals, nil
}

func (r *memoryGoalRepository) ExistsByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (bool, error) {
	g, err := r.FindByOwnerAndType(ctx, ownerID, goalType)
	return g != nil, err
}

func (r *memoryGoalRepository) Save(context.Context, *entity.Goal) error {
	return nil
}

func (r *memoryGoalRepository) SaveAll(context.Context, []*entity.Goal) error {
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
