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

// CreateGoalInput represents the input for goal creation.
// Targets are the daily values; weekly and monthly goals are derived from them.
type CreateGoalInput struct {
	OwnerID uuid.UUID
	Targets entity.Nutrients
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	// Goals is ordered DAILY, WEEKLY, MONTHLY.
	Goals []*entity.Goal
}

// CreateGoalUseCase handles creation of a goal hierarchy.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	clock    adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		clock:    clock,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateTargets(input.Targets); err != nil {
		return nil, err
	}

	// One hierarchy per owner
	exists, err := uc.goalRepo.ExistsByOwnerAndType(ctx, input.OwnerID, entity.GoalTypeDaily)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	if exists {
		return nil, goalAlreadyExistsError()
	}

	goals := entity.NewGoalHierarchy(input.OwnerID, input.Targets, uc.clock.Now())

	if err := uc.goalRepo.CreateAll(ctx, goals); err != nil {
		if errors.Is(err, domainerror.ErrGoalAlreadyExists) {
			return nil, goalAlreadyExistsError()
		}
		return nil, fmt.Errorf("failed to create goals: %w", err)
	}

	slog.InfoContext(ctx, "goal hierarchy created",
		"owner_id", input.OwnerID,
		"daily_goal_id", goals[0].ID,
	)

	return &CreateGoalOutput{
		Goals: goals,
	}, nil
}

func goalAlreadyExistsError() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalAlreadyExists,
		"a goal of this type already exists for this user",
		domainerror.ErrGoalAlreadyExists,
	)
}

// validateTargets rejects negative targets and daily targets whose derived goals would not fit in storage.
func validateTargets(targets entity.Nutrients) error {
	if targets.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidNutrientTarget,
			"nutrient targets must be zero or greater",
			domainerror.ErrInvalidNutrientTarget,
		)
	}
	if targets.Rounded().Exceeds(entity.MaxDailyTarget) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidNutrientTarget,
			fmt.Sprintf("daily nutrient targets must not exceed %s", entity.MaxDailyTarget),
			domainerror.ErrInvalidNutrientTarget,
		)
	}
	return nil
}
