// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase handles getting a goal by ID.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFoundError()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.OwnerID != input.OwnerID {
		return nil, goalNotFoundError()
	}

	return &GetGoalOutput{
		Goal: goal,
	}, nil
}
