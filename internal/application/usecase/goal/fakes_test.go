package goal

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// memoryGoalRepository is an in-memory GoalRepository for use case tests.
type memoryGoalRepository struct {
	goals    map[uuid.UUID]*entity.Goal
	failWith    error
	saved       int
	singleSaves int
}

func newMemoryGoalRepository(goals ...*entity.Goal) *memoryGoalRepository {
	repo := &memoryGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
	for _, g := range goals {
		repo.put(g)
	}
	return repo
}

func (r *memoryGoalRepository) put(g *entity.Goal) {
	clone := *g
	r.goals[g.ID] = &clone
}

func (r *memoryGoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.CreateAll(ctx, []*entity.Goal{goal})
}

func (r *memoryGoalRepository) CreateAll(_ context.Context, goals []*entity.Goal) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, g := range goals {
		for _, existing := range r.goals {
			if existing.OwnerID == g.OwnerID && existing.Type == g.Type {
				return domainerror.ErrGoalAlreadyExists
			}
		}
	}
	for _, g := range goals {
		r.put(g)
	}
	return nil
}

func (r *memoryGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *memoryGoalRepository) FindByOwnerAndType(_ context.Context, ownerID uuid.UUID, goalType entity.GoalType) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.OwnerID == ownerID && g.Type == goalType {
			clone := *g
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memoryGoalRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.OwnerID == ownerID {
			clone := *g
			goals = append(goals, &clone)
		}
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].Type.Factor().LessThan(goals[j].Type.Factor())
	})
	return goals, nil
}

func (r *memoryGoalRepository) ExistsByOwnerAndType(ctx context.Context, ownerID uuid.UUID, goalType entity.GoalType) (bool, error) {
	g, err := r.FindByOwnerAndType(ctx, ownerID, goalType)
	return g != nil, err
}

func (r *memoryGoalRepository) Save(ctx context.Context, goal *entity.Goal) error {
	r.singleSaves++
	return r.SaveAll(ctx, []*entity.Goal{goal})
}

func (r *memoryGoalRepository) SaveAll(_ context.Context, goals []*entity.Goal) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, g := range goals {
		if _, ok := r.goals[g.ID]; !ok {
			return errors.New("save of unknown goal")
		}
	}
	for _, g := range goals {
		r.put(g)
	}
	r.saved += len(goals)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testClock = fixedClock{now: time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)}
