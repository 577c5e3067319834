// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_goals_owner_type,priority:1"`
	Type           string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_goals_owner_type,priority:2"`
	CaloriesTarget decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	ProteinTarget  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CarbsTarget    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	FatTarget      decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:      m.ID,
		OwnerID: m.OwnerID,
		Type:    entity.GoalType(m.Type),
		Targets: entity.Nutrients{
			Calories: m.CaloriesTarget,
			Protein:  m.ProteinTarget,
			Carbs:    m.CarbsTarget,
			Fat:      m.FatTarget,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		OwnerID:        goal.OwnerID,
		Type:           string(goal.Type),
		CaloriesTarget: goal.Targets.Calories,
		ProteinTarget:  goal.Targets.Protein,
		CarbsTarget:    goal.Targets.Carbs,
		FatTarget:      goal.Targets.Fat,
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      goal.UpdatedAt,
	}
}
