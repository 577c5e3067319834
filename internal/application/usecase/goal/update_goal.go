// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	GoalID  uuid.UUID
	OwnerID uuid.UUID
	Targets entity.Nutrients
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	// Goals holds the updated daily goal followed by whichever derived goals exist.
	Goals []*entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute overwrites the daily targets and rescales the owner's weekly and monthly goals.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFoundError()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	// Goals of other owners are reported as missing
	if goal.OwnerID != input.OwnerID {
		return nil, goalNotFoundError()
	}

	if goal.Type.IsDerived() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeDerivedGoalReadOnly,
			"derived goals cannot be updated directly; update the daily goal",
			domainerror.ErrDerivedGoalReadOnly,
		)
	}

	if err := validateTargets(input.Targets); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	goal.Targets = input.Targets.Rounded()
	goal.UpdatedAt = now

	goals := []*entity.Goal{goal}
	for _, derivedType := range []entity.GoalType{entity.GoalTypeWeekly, entity.GoalTypeMonthly} {
		derived, err := uc.goalRepo.FindByOwnerAndType(ctx, goal.OwnerID, derivedType)
		if err != nil {
			return nil, fmt.Errorf("failed to find %s goal: %w", derivedType, err)
		}
		if derived == nil {
			slog.WarnContext(ctx, "derived goal missing during update",
				"owner_id", goal.OwnerID,
				"goal_type", derivedType,
			)
			continue
		}
		derived.RescaleFrom(goal, now)
		goals = append(goals, derived)
	}

	if len(goals) == 1 {
		err = uc.goalRepo.Save(ctx, goal)
	} else {
		err = uc.goalRepo.SaveAll(ctx, goals)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update goals: %w", err)
	}

	slog.InfoContext(ctx, "goal hierarchy rescaled",
		"owner_id", goal.OwnerID,
		"goals_updated", len(goals),
	)

	return &UpdateGoalOutput{
		Goals: goals,
	}, nil
}

func goalNotFoundError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}
