// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutritrack/backend/internal/application/usecase/meal"
	"github.com/nutritrack/backend/internal/domain/entity"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/entrypoint/dto"
)

// MealController handles meal logging endpoints.
type MealController struct {
	listUseCase   *meal.ListMealsUseCase
	createUseCase *meal.CreateMealUseCase
	getUseCase    *meal.GetMealUseCase
	updateUseCase *meal.UpdateMealUseCase
	deleteUseCase *meal.DeleteMealUseCase
	location      *time.Location
}

// NewMealController creates a new meal controller instance.
// Date query parameters are interpreted in location.
func NewMealController(
	listUseCase *meal.ListMealsUseCase,
	createUseCase *meal.CreateMealUseCase,
	getUseCase *meal.GetMealUseCase,
	updateUseCase *meal.UpdateMealUseCase,
	deleteUseCase *meal.DeleteMealUseCase,
	location *time.Location,
) *MealController {
	if location == nil {
		location = time.UTC
	}
	return &MealController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		location:      location,
	}
}

// List handles GET /users/:userId/meals requests.
func (c *MealController) List(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeMissingMealFields))
	if !ok {
		return
	}

	var query dto.ListMealsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	// Already validated by the binding
	startDate, _ := time.ParseInLocation(time.DateOnly, query.StartDate, c.location)
	endDate, _ := time.ParseInLocation(time.DateOnly, query.EndDate, c.location)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), meal.ListMealsInput{
		OwnerID:   userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealListResponse(output.Meals))
}

// Create handles POST /users/:userId/meals requests.
func (c *MealController) Create(ctx *gin.Context) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeMissingMealFields))
	if !ok {
		return
	}

	var req dto.MealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), meal.CreateMealInput{
		OwnerID:    userID,
		Type:       entity.MealType(req.Type),
		OccurredAt: req.OccurredAt,
		Notes:      req.Notes,
		Items:      toMealItemInputs(req.Items),
	})
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMealResponse(output.Meal))
}

// Get handles GET /users/:userId/meals/:mealId requests.
func (c *MealController) Get(ctx *gin.Context) {
	userID, mealID, ok := c.parseMealPath(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), meal.GetMealInput{
		MealID:  mealID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealResponse(output.Meal))
}

// Update handles PUT /users/:userId/meals/:mealId requests.
func (c *MealController) Update(ctx *gin.Context) {
	userID, mealID, ok := c.parseMealPath(ctx)
	if !ok {
		return
	}

	var req dto.MealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMealFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), meal.UpdateMealInput{
		MealID:     mealID,
		OwnerID:    userID,
		Type:       entity.MealType(req.Type),
		OccurredAt: req.OccurredAt,
		Notes:      req.Notes,
		Items:      toMealItemInputs(req.Items),
	})
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMealResponse(output.Meal))
}

// Delete handles DELETE /users/:userId/meals/:mealId requests.
func (c *MealController) Delete(ctx *gin.Context) {
	userID, mealID, ok := c.parseMealPath(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), meal.DeleteMealInput{
		MealID:  mealID,
		OwnerID: userID,
	})
	if err != nil {
		c.handleMealError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *MealController) parseMealPath(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := parseUUIDParam(ctx, "userId", "user", string(domainerror.ErrCodeMissingMealFields))
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	mealID, ok := parseUUIDParam(ctx, "mealId", "meal", string(domainerror.ErrCodeMealNotFound))
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, mealID, true
}

// toMealItemInputs converts validated item requests to use case inputs.
func toMealItemInputs(items []dto.MealItemRequest) []meal.MealItemInput {
	inputs := make([]meal.MealItemInput, len(items))
	for i, item := range items {
		inputs[i] = meal.MealItemInput{
			FoodID:   uuid.MustParse(item.FoodID),
			Quantity: *item.Quantity,
			Unit:     entity.MeasurementUnit(item.Unit),
			Notes:    item.Notes,
		}
	}
	return inputs
}

// handleMealError handles meal errors and returns appropriate HTTP responses.
func (c *MealController) handleMealError(ctx *gin.Context, err error) {
	var mealErr *domainerror.MealError
	if errors.As(err, &mealErr) {
		ctx.JSON(getStatusCodeForMealError(mealErr.Code), dto.ErrorResponse{
			Error: mealErr.Message,
			Code:  string(mealErr.Code),
		})
		return
	}

	logInternalError(ctx, "meal request failed", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMealError maps meal error codes to HTTP status codes.
func getStatusCodeForMealError(code domainerror.MealErrorCode) int {
	switch code {
	case domainerror.ErrCodeMealNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMealWithoutItems,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidUnit,
		domainerror.ErrCodeInvalidMealType,
		domainerror.ErrCodeMealFoodNotFound,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeMissingMealFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
