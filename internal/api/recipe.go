package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/service"
)

// RecipeHandler serves the recipe catalog
type RecipeHandler struct {
	service service.IRecipeService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(service service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{service: service, logger: logger}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/recipes", h.List)
}

// List handles GET /recipes?limit=N
func (h *RecipeHandler) List(c *gin.Context) {
	limit := service.DefaultRecipeLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.logger, apperrors.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	recipes, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, RecipesResponse{Recipes: recipes})
}
