// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	OwnerID uuid.UUID
	Type    *entity.GoalType // Optional filter
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Type == nil {
		goals, err := uc.goalRepo.FindByOwner(ctx, input.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		return &ListGoalsOutput{Goals: goals}, nil
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be DAILY, WEEKLY or MONTHLY",
			domainerror.ErrInvalidGoalType,
		)
	}

	goal, err := uc.goalRepo.FindByOwnerAndType(ctx, input.OwnerID, *input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	goals := make([]*entity.Goal, 0, 1)
	if goal != nil {
		goals = append(goals, goal)
	}

	return &ListGoalsOutput{
		Goals: goals,
	}, nil
}
