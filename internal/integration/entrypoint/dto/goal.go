// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nutritrack/backend/internal/domain/entity"
)

// NutrientTargetsRequest holds the four daily targets of a goal request.
type NutrientTargetsRequest struct {
	Calories *decimal.Decimal `json:"calories" binding:"required"`
	Protein  *decimal.Decimal `json:"protein" binding:"required"`
	Carbs    *decimal.Decimal `json:"carbs" binding:"required"`
	Fat      *decimal.Decimal `json:"fat" binding:"required"`
}

// ToNutrients converts the request values to domain nutrients.
// Callers must have validated the request, so every field is set.
func (r NutrientTargetsRequest) ToNutrients() entity.Nutrients {
	return entity.Nutrients{
		Calories: *r.Calories,
		Protein:  *r.Protein,
		Carbs:    *r.Carbs,
		Fat:      *r.Fat,
	}
}

// CreateGoalRequest represents the request body for goal creation.
// The values are daily targets; weekly and monthly goals are derived.
type CreateGoalRequest struct {
	NutrientTargetsRequest
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	NutrientTargetsRequest
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Calories  decimal.Decimal `json:"calories"`
	Protein   decimal.Decimal `json:"protein"`
	Carbs     decimal.Decimal `json:"carbs"`
	Fat       decimal.Decimal `json:"fat"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:        g.ID.String(),
		UserID:    g.OwnerID.String(),
		Type:      string(g.Type),
		Calories:  g.Targets.Calories,
		Protein:   g.Targets.Protein,
		Carbs:     g.Targets.Carbs,
		Fat:       g.Targets.Fat,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGoalResponses converts goals to response DTOs, keeping their order.
func ToGoalResponses(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}

// ProgressItemResponse compares one nutrient target with the consumed amount.
type ProgressItemResponse struct {
	Target     decimal.Decimal `json:"target"`
	Consumed   decimal.Decimal `json:"consumed"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ProgressResponse represents the progress of a goal over its current period.
type ProgressResponse struct {
	GoalID        string               `json:"goal_id"`
	Type          string               `json:"type"`
	ReferenceDate string               `json:"reference_date"`
	PeriodStart   string               `json:"period_start"`
	PeriodEnd     string               `json:"period_end"`
	Calories      ProgressItemResponse `json:"calories"`
	Protein       ProgressItemResponse `json:"protein"`
	Carbs         ProgressItemResponse `json:"carbs"`
	Fat           ProgressItemResponse `json:"fat"`
}

func toProgressItemResponse(item entity.ProgressItem) ProgressItemResponse {
	return ProgressItemResponse{
		Target:     item.Target,
		Consumed:   item.Consumed,
		Percentage: item.Percentage,
	}
}

// ToProgressResponse converts a goal and its progress to a ProgressResponse DTO.
func ToProgressResponse(g *entity.Goal, p *entity.Progress) ProgressResponse {
	return ProgressResponse{
		GoalID:        g.ID.String(),
		Type:          string(p.GoalType),
		ReferenceDate: p.ReferenceDate.Format(time.DateOnly),
		PeriodStart:   p.PeriodStart.Format(time.DateOnly),
		PeriodEnd:     p.PeriodEnd.Format(time.DateOnly),
		Calories:      toProgressItemResponse(p.Calories),
		Protein:       toProgressItemResponse(p.Protein),
		Carbs:         toProgressItemResponse(p.Carbs),
		Fat:           toProgressItemResponse(p.Fat),
	}
}
