// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents the period a nutrition goal covers.
type GoalType string

const (
	GoalTypeDaily   GoalType = "DAILY"
	GoalTypeWeekly  GoalType = "WEEKLY"
	GoalTypeMonthly GoalType = "MONTHLY"
)

// goalFactors maps each goal type to its multiplier over the daily goal.
var goalFactors = map[GoalType]int64{
	GoalTypeDaily:   1,
	GoalTypeWeekly:  7,
	GoalTypeMonthly: 30,
}

// MaxGoalTarget is the largest target a stored goal of any type can hold (DECIMAL(12,3)).
var MaxGoalTarget = decimal.RequireFromString("999999999.999")

// MaxDailyTarget is the largest daily target whose monthly derivation still fits MaxGoalTarget.
var MaxDailyTarget = MaxGoalTarget.Div(decimal.NewFromInt(goalFactors[GoalTypeMonthly])).RoundDown(NutrientScale)

// IsValid reports whether t is one of the known goal types.
func (t GoalType) IsValid() bool {
	_, ok := goalFactors[t]
	return ok
}

// Factor returns how many daily goals this type spans.
func (t GoalType) Factor() decimal.Decimal {
	return decimal.NewFromInt(goalFactors[t])
}

// IsDerived reports whether the goal type is computed from the daily goal.
func (t GoalType) IsDerived() bool {
	return t == GoalTypeWeekly || t == GoalTypeMonthly
}

// Goal represents a nutrition target of one user for one period type.
type Goal struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Type      GoalType
	Targets   Nutrients
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGoal creates a new Goal entity stamped with now.
func NewGoal(ownerID uuid.UUID, goalType GoalType, targets Nutrients, now time.Time) *Goal {
	now = now.UTC()

	return &Goal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      goalType,
		Targets:   targets.Rounded(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewGoalHierarchy builds the daily goal and its weekly and monthly derivations.
// The result is always ordered DAILY, WEEKLY, MONTHLY.
func NewGoalHierarchy(ownerID uuid.UUID, dailyTargets Nutrients, now time.Time) []*Goal {
	daily := NewGoal(ownerID, GoalTypeDaily, dailyTargets, now)
	weekly := daily.Derive(GoalTypeWeekly)
	monthly := daily.Derive(GoalTypeMonthly)
	return []*Goal{daily, weekly, monthly}
}

// Derive creates a new goal of the given type scaled from g.
func (g *Goal) Derive(goalType GoalType) *Goal {
	derived := NewGoal(g.OwnerID, goalType, g.Targets.Scale(goalType.Factor()), g.CreatedAt)
	derived.UpdatedAt = g.UpdatedAt
	return derived
}

// RescaleFrom overwrites g's targets with base's targets times g's factor.
func (g *Goal) RescaleFrom(base *Goal, now time.Time) {
	g.Targets = base.Targets.Scale(g.Type.Factor())
	g.UpdatedAt = now
}
