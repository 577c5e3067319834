// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// percentageScale is the scale of consumed/target before it is multiplied by 100.
const percentageScale int32 = 4

var hundred = decimal.NewFromInt(100)

// ProgressItem compares one nutrient target with what was consumed.
type ProgressItem struct {
	Target     decimal.Decimal
	Consumed   decimal.Decimal
	Percentage decimal.Decimal
}

// NewProgressItem builds a ProgressItem. Percentage is zero when target <= 0.
func NewProgressItem(target, consumed decimal.Decimal) ProgressItem {
	percentage := decimal.Zero
	if target.IsPositive() {
		percentage = consumed.DivRound(target, percentageScale).Mul(hundred)
	}
	return ProgressItem{
		Target:     target,
		Consumed:   consumed,
		Percentage: percentage,
	}
}

// Progress is the derived, non-persisted progress of a goal over its current period.
type Progress struct {
	GoalType      GoalType
	ReferenceDate time.Time
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Calories      ProgressItem
	Protein       ProgressItem
	Carbs         ProgressItem
	Fat           ProgressItem
}

// NewProgress combines goal targets and consumed totals into a Progress.
func NewProgress(goalType GoalType, targets, consumed Nutrients) *Progress {
	return &Progress{
		GoalType: goalType,
		Calories: NewProgressItem(targets.Calories, consumed.Calories),
		Protein:  NewProgressItem(targets.Protein, consumed.Protein),
		Carbs:    NewProgressItem(targets.Carbs, consumed.Carbs),
		Fat:      NewProgressItem(targets.Fat, consumed.Fat),
	}
}
