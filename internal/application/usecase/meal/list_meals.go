// Package meal contains meal logging use cases.
package meal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/domain/valueobject"
)

// ListMealsInput represents the input for listing meals.
// StartDate and EndDate are calendar days, both inclusive.
type ListMealsInput struct {
	OwnerID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ListMealsOutput represents the output of listing meals.
type ListMealsOutput struct {
	Meals []entity.MealWithTotals
}

// ListMealsUseCase lists the meals of an owner inside a date range.
type ListMealsUseCase struct {
	mealRepo adapter.MealRepository
	totaler  MealTotaler
}

// NewListMealsUseCase creates a new ListMealsUseCase instance.
func NewListMealsUseCase(mealRepo adapter.MealRepository, totaler MealTotaler) *ListMealsUseCase {
	return &ListMealsUseCase{
		mealRepo: mealRepo,
		totaler:  totaler,
	}
}

// Execute performs the meal listing.
func (uc *ListMealsUseCase) Execute(ctx context.Context, input ListMealsInput) (*ListMealsOutput, error) {
	period := valueobject.Period{
		Start: valueobject.StartOfDay(input.StartDate),
		End:   valueobject.StartOfDay(input.EndDate),
	}
	if period.End.Before(period.Start) {
		return nil, domainerror.NewMealError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	from, to := period.Window()
	meals, err := uc.mealRepo.FindByOwnerAndDateRange(ctx, input.OwnerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	result, err := uc.totaler.Totals(ctx, meals)
	if err != nil {
		return nil, err
	}

	return &ListMealsOutput{
		Meals: result,
	}, nil
}
