// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/application/usecase/goal"
	"github.com/nutritrack/backend/internal/application/usecase/progress"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	createUseCase   *goal.CreateGoalUseCase
	getUseCase      *goal.GetGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	progressUseCase *progress.GetProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	progressUseCase *progress.GetProgressUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		progressUseCase: progressUseCase,
	}
}

// List handles GET /users/:userId/goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeInvalidOwnerID))
	if !ok {
		return
	}

	input := goal.ListGoalsInput{
		OwnerID: userID,
	}

	// Optional type filter
	if typeParam := ctx.Query("type"); typeParam != "" {
		goalType := entity.GoalType(strings.ToUpper(typeParam))
		input.Type = &goalType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponses(output.Goals))
}

// Create handles POST /users/:userId/goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeInvalidOwnerID))
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		OwnerID: userID,
		Targets: req.ToNutrients(),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponses(output.Goals))
}

// Get handles GET /users/:userId/goals/:goalId requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeInvalidOwnerID))
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "goalId", "goal", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID:  goalID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PATCH /users/:userId/goals/:goalId requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeInvalidOwnerID))
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "goalId", "goal", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID:  goalID,
		OwnerID: userID,
		Targets: req.ToNutrients(),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponses(output.Goals))
}

// Progress handles GET /users/:userId/goals/progress requests.
func (c *GoalController) Progress(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeInvalidOwnerID))
	if !ok {
		return
	}

	typeParam := ctx.Query("type")
	if typeParam == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter 'type' is required",
			Code:  string(domainerror.ErrCodeInvalidGoalType),
		})
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), progress.GetProgressInput{
		OwnerID: userID,
		Type:    entity.GoalType(strings.ToUpper(typeParam)),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressResponse(output.Goal, output.Progress))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	// Progress aggregation surfaces meal errors
	var mealErr *domainerror.MealError
	if errors.As(err, &mealErr) {
		ctx.JSON(getStatusCodeForMealError(mealErr.Code), dto.ErrorResponse{
			Error: mealErr.Message,
			Code:  string(mealErr.Code),
		})
		return
	}

	logInternalError(ctx, "goal request failed", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound, domainerror.ErrCodeActiveGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidNutrientTarget,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeDerivedGoalReadOnly,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidOwnerID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
