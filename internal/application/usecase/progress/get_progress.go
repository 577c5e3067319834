// Package progress contains the goal progress use cases.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/domain/valueobject"
)

// GetProgressInput represents the input for progress calculation.
type GetProgressInput struct {
	OwnerID uuid.UUID
	Type    entity.GoalType
}

// GetProgressOutput represents the output of progress calculation.
type GetProgressOutput struct {
	Goal     *entity.Goal
	Progress *entity.Progress
}

// GetProgressUseCase compares the active goal of a type with the meals logged in its current period.
type GetProgressUseCase struct {
	goalRepo   adapter.GoalRepository
	aggregator *MealAggregator
	clock      adapter.Clock
	location   *time.Location
}

// NewGetProgressUseCase creates a new GetProgressUseCase instance.
// Calendar days are evaluated in location; nil means UTC.
func NewGetProgressUseCase(
	goalRepo adapter.GoalRepository,
	aggregator *MealAggregator,
	clock adapter.Clock,
	location *time.Location,
) *GetProgressUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetProgressUseCase{
		goalRepo:   goalRepo,
		aggregator: aggregator,
		clock:      clock,
		location:   location,
	}
}

// Execute performs the progress calculation.
func (uc *GetProgressUseCase) Execute(ctx context.Context, input GetProgressInput) (*GetProgressOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be DAILY, WEEKLY or MONTHLY",
			domainerror.ErrInvalidGoalType,
		)
	}

	goal, err := uc.goalRepo.FindByOwnerAndType(ctx, input.OwnerID, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to find active goal: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeActiveGoalNotFound,
			"no active goal of this type for this user",
			domainerror.ErrActiveGoalNotFound,
		)
	}

	referenceDate := valueobject.StartOfDay(uc.clock.Now().In(uc.location))

	period, err := valueobject.ResolvePeriod(goal.Type, referenceDate)
	if err != nil {
		return nil, err
	}

	consumed, err := uc.aggregator.Sum(ctx, input.OwnerID, period)
	if err != nil {
		return nil, err
	}

	progress := entity.NewProgress(goal.Type, goal.Targets, consumed)
	progress.ReferenceDate = referenceDate
	progress.PeriodStart = period.Start
	progress.PeriodEnd = period.End

	slog.DebugContext(ctx, "progress calculated",
		"owner_id", input.OwnerID,
		"goal_type", goal.Type,
		"period_start", period.Start.Format(time.DateOnly),
		"period_end", period.End.Format(time.DateOnly),
	)

	return &GetProgressOutput{
		Goal:     goal,
		Progress: progress,
	}, nil
}
