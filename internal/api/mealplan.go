package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/service"
)

// MealPlanHandler serves meal-plan generation
type MealPlanHandler struct {
	service service.IMealPlanService
	logger  *zap.Logger
}

// NewMealPlanHandler creates a new MealPlanHandler
func NewMealPlanHandler(service service.IMealPlanService, logger *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{service: service, logger: logger}
}

// RegisterRoutes registers the meal-plan routes
func (h *MealPlanHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/mealplan", h.Generate)
}

// Generate handles POST /mealplan
func (h *MealPlanHandler) Generate(c *gin.Context) {
	var req MealPlanRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	// an explicit zero would otherwise be indistinguishable from the default
	if req.Days != nil && *req.Days < 1 {
		respondError(c, h.logger, apperrors.NewValidationError("days", "must be at least 1"))
		return
	}

	plan, err := h.service.Generate(c.Request.Context(), req.ToProfile())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("meal plan generated",
		zap.Int("days", len(plan.Days)),
		zap.Int("daily_calories", plan.DailyCalories),
		zap.Bool("corrected", plan.Corrected))

	c.JSON(http.StatusOK, MealPlanResponse{
		MealPlan:      plan.Days,
		DailyCalories: plan.DailyCalories,
		GeneratedAt:   plan.GeneratedAt,
	})
}
