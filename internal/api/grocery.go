package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/service"
)

// GroceryListHandler serves grocery list creation and the session endpoints
type GroceryListHandler struct {
	service service.IGroceryListService
	logger  *zap.Logger
	now     func() time.Time
}

// NewGroceryListHandler creates a new GroceryListHandler
func NewGroceryListHandler(service service.IGroceryListService, logger *zap.Logger) *GroceryListHandler {
	return &GroceryListHandler{service: service, logger: logger, now: time.Now}
}

// RegisterRoutes registers the grocery list routes. Creation calls the model
// and is mounted on generation; lookups and deletes go on router.
func (h *GroceryListHandler) RegisterRoutes(router, generation gin.IRoutes) {
	generation.POST("/grocery-list", h.Create)
	router.GET("/grocery-list/:session_id", h.Get)
	router.DELETE("/grocery-list/:session_id", h.Delete)
}

// Create handles POST /grocery-list
func (h *GroceryListHandler) Create(c *gin.Context) {
	var req GroceryListRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.MealPlan)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("grocery list created",
		zap.String("session_id", result.SessionID),
		zap.Int("items", len(result.GroceryList)),
		zap.Bool("corrected", result.Corrected))

	c.JSON(http.StatusCreated, GroceryListResponse{
		SessionID:   result.SessionID,
		GroceryList: result.GroceryList,
		CreatedAt:   result.CreatedAt,
	})
}

// Get handles GET /grocery-list/:session_id
func (h *GroceryListHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	items, err := h.service.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, StoredGroceryListResponse{
		SessionID:   sessionID,
		GroceryList: items,
		RetrievedAt: h.now().UTC(),
	})
}

// Delete handles DELETE /grocery-list/:session_id. Deleting an unknown
// session succeeds.
func (h *GroceryListHandler) Delete(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.service.Delete(c.Request.Context(), sessionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("grocery list deleted", zap.String("session_id", sessionID))
	c.JSON(http.StatusOK, DeleteResponse{
		Message:   "Grocery list deleted",
		DeletedAt: h.now().UTC(),
	})
}
