package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/api"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/middleware"
)

// Handlers groups the API handlers mounted by SetupRouter
type Handlers struct {
	MealPlan    *api.MealPlanHandler
	GroceryList *api.GroceryListHandler
	Recipes     *api.RecipeHandler
	Health      *api.HealthHandler
}

// Options configures the middleware chain
type Options struct {
	AllowedOrigin string
	Metrics       *metrics.Metrics
	// RateLimiter guards the generation endpoints when non-nil
	RateLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, opts Options, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger, "/health", "/metrics"))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(opts.AllowedOrigin))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// Generation routes
	generation := router.Group("")
	if opts.RateLimiter != nil {
		generation.Use(opts.RateLimiter.Middleware())
	}

	h.Health.RegisterRoutes(router)
	h.Recipes.RegisterRoutes(router)
	h.MealPlan.RegisterRoutes(generation)
	h.GroceryList.RegisterRoutes(router, generation)

	return router
}
