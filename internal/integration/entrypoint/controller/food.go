// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/application/usecase/food"
	domainerror "github.com/nutritrack/backend/internal/domain/error"
	"github.com/nutritrack/backend/internal/integration/entrypoint/dto"
)

// FoodController handles food catalog endpoints.
type FoodController struct {
	listUseCase   *food.ListFoodsUseCase
	createUseCase *food.CreateFoodUseCase
	getUseCase    *food.GetFoodUseCase
	updateUseCase *food.UpdateFoodUseCase
}

// NewFoodController creates a new food controller instance.
func NewFoodController(
	listUseCase *food.ListFoodsUseCase,
	createUseCase *food.CreateFoodUseCase,
	getUseCase *food.GetFoodUseCase,
	updateUseCase *food.UpdateFoodUseCase,
) *FoodController {
	return &FoodController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// List handles GET /foods requests.
func (c *FoodController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), food.ListFoodsInput{
		Name: ctx.Query("name"),
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoodListResponse(output.Foods))
}

// Create handles POST /foods requests.
func (c *FoodController) Create(ctx *gin.Context) {
	var req dto.FoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFoodFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), food.CreateFoodInput{
		Name:      req.Name,
		Nutrients: req.ToNutrients(),
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFoodResponse(output.Food))
}

// Get handles GET /foods/:id requests.
func (c *FoodController) Get(ctx *gin.Context) {
	foodID, ok := parseUUIDParam(ctx, "id", "food", string(domainerror.ErrCodeFoodNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), food.GetFoodInput{FoodID: foodID})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoodResponse(output.Food))
}

// Update handles PUT /foods/:id requests.
func (c *FoodController) Update(ctx *gin.Context) {
	foodID, ok := parseUUIDParam(ctx, "id", "food", string(domainerror.ErrCodeFoodNotFound))
	if !ok {
		return
	}

	var req dto.FoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFoodFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), food.UpdateFoodInput{
		FoodID:    foodID,
		Name:      req.Name,
		Nutrients: req.ToNutrients(),
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoodResponse(output.Food))
}

// handleFoodError handles food errors and returns appropriate HTTP responses.
func (c *FoodController) handleFoodError(ctx *gin.Context, err error) {
	var foodErr *domainerror.FoodError
	if errors.As(err, &foodErr) {
		ctx.JSON(c.getStatusCodeForFoodError(foodErr.Code), dto.ErrorResponse{
			Error: foodErr.Message,
			Code:  string(foodErr.Code),
		})
		return
	}

	logInternalError(ctx, "food request failed", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFoodError maps food error codes to HTTP status codes.
func (c *FoodController) getStatusCodeForFoodError(code domainerror.FoodErrorCode) int {
	switch code {
	case domainerror.ErrCodeFoodNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFoodNameAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidNutrientValue,
		domainerror.ErrCodeFoodNameRequired,
		domainerror.ErrCodeMissingFoodFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
