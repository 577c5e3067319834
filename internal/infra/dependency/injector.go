// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nutritrack/backend/config"
	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/application/usecase/food"
	"github.com/nutritrack/backend/internal/application/usecase/goal"
	"github.com/nutritrack/backend/internal/application/usecase/meal"
	"github.com/nutritrack/backend/internal/application/usecase/progress"
	"github.com/nutritrack/backend/internal/infra/server/router"
	"github.com/nutritrack/backend/internal/integration/adapters"
	"github.com/nutritrack/backend/internal/integration/cache"
	"github.com/nutritrack/backend/internal/integration/entrypoint/controller"
	"github.com/nutritrack/backend/internal/integration/entrypoint/middleware"
	"github.com/nutritrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// Options carries optional collaborators. Zero values select the defaults.
type Options struct {
	// Redis enables the food catalog cache when set.
	Redis *redis.Client
	// Clock overrides the system clock.
	Clock adapter.Clock
	// Location overrides the configured progress timezone.
	Location *time.Location
	// DBHealthChecker overrides the database ping.
	DBHealthChecker func() bool
	// CacheHealthChecker reports Redis health on /health.
	CacheHealthChecker func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	mealRepo := persistence.NewMealRepository(db)
	foodRepo := persistence.NewFoodRepository(db)

	// Food lookups go through Redis when available
	var catalog adapter.FoodCatalog = foodRepo
	var invalidator adapter.FoodCacheInvalidator
	if opts.Redis != nil {
		foodCache := cache.NewFoodCatalogCache(foodRepo, opts.Redis, cfg.Redis.FoodCacheTTL)
		catalog = foodCache
		invalidator = foodCache
	}

	aggregator := progress.NewMealAggregator(mealRepo, catalog)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, clock)
	getProgressUseCase := progress.NewGetProgressUseCase(goalRepo, aggregator, clock, location)

	// Create food use cases
	listFoodsUseCase := food.NewListFoodsUseCase(foodRepo)
	createFoodUseCase := food.NewCreateFoodUseCase(foodRepo, clock)
	getFoodUseCase := food.NewGetFoodUseCase(catalog)
	updateFoodUseCase := food.NewUpdateFoodUseCase(foodRepo, invalidator, clock)

	// Create meal use cases
	listMealsUseCase := meal.NewListMealsUseCase(mealRepo, aggregator)
	createMealUseCase := meal.NewCreateMealUseCase(mealRepo, catalog, aggregator, clock)
	getMealUseCase := meal.NewGetMealUseCase(mealRepo, aggregator)
	updateMealUseCase := meal.NewUpdateMealUseCase(mealRepo, catalog, aggregator, clock)
	deleteMealUseCase := meal.NewDeleteMealUseCase(mealRepo)

	// Create controllers
	dbHealthChecker := opts.DBHealthChecker
	if dbHealthChecker == nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthChecker, opts.CacheHealthChecker)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		getProgressUseCase,
	)

	foodController := controller.NewFoodController(
		listFoodsUseCase,
		createFoodUseCase,
		getFoodUseCase,
		updateFoodUseCase,
	)

	mealController := controller.NewMealController(
		listMealsUseCase,
		createMealUseCase,
		getMealUseCase,
		updateMealUseCase,
		deleteMealUseCase,
		location,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.MaxRequests,
		cfg.RateLimit.Window,
		cfg.RateLimit.Enabled,
	)

	// Create router
	r := router.NewRouter(healthController, goalController, foodController, mealController, writeRateLimiter)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RateLimiter: writeRateLimiter,
	}
}
