// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/integration/entrypoint/controller"
	"github.com/nutritrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	goalController   *controller.GoalController
	foodController   *controller.FoodController
	mealController   *controller.MealController
	writeRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	foodController *controller.FoodController,
	mealController *controller.MealController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController: healthController,
		goalController:   goalController,
		foodController:   foodController,
		mealController:   mealController,
		writeRateLimiter: writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// writeGuard returns the rate limiting middleware for mutating routes.
func (r *Router) writeGuard() gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.writeRateLimiter.Middleware()
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.foodController != nil {
			foods := v1.Group("/foods")
			{
				foods.GET("", r.foodController.List)
				foods.POST("", r.writeGuard(), r.foodController.Create)
				foods.GET("/:id", r.foodController.Get)
				foods.PUT("/:id", r.writeGuard(), r.foodController.Update)
			}
		}

		users := v1.Group("/users/:userId")

		if r.goalController != nil {
			goals := users.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.writeGuard(), r.goalController.Create)
				goals.GET("/progress", r.goalController.Progress)
				goals.GET("/:goalId", r.goalController.Get)
				goals.PATCH("/:goalId", r.writeGuard(), r.goalController.Update)
			}
		}

		if r.mealController != nil {
			meals := users.Group("/meals")
			{
				meals.GET("", r.mealController.List)
				meals.POST("", r.writeGuard(), r.mealController.Create)
				meals.GET("/:mealId", r.mealController.Get)
				meals.PUT("/:mealId", r.writeGuard(), r.mealController.Update)
				meals.DELETE("/:mealId", r.writeGuard(), r.mealController.Delete)
			}
		}
	}
}
