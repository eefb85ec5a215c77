// Package adapter serves a /v1/completions endpoint in front of the Gemini
// client so other processes can reach the model over plain HTTP.
package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/llm"
)

// ModelGenerator generates text with a caller-chosen model
type ModelGenerator interface {
	GenerateWithModel(ctx context.Context, model string, maxTokens int, prompt string) (string, error)
	ModelName() string
}

// CompletionsHandler serves POST /v1/completions
type CompletionsHandler struct {
	generator ModelGenerator
	timeout   time.Duration
	logger    *zap.Logger
	newID     func() string
}

// NewCompletionsHandler creates a new CompletionsHandler. Each model call is
// bounded by timeout; a non-positive value uses llm.DefaultTimeout.
func NewCompletionsHandler(generator ModelGenerator, timeout time.Duration, logger *zap.Logger) *CompletionsHandler {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	return &CompletionsHandler{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
		newID:     func() string { return "cmpl-" + uuid.NewString() },
	}
}

// RegisterRoutes registers the completions route
func (h *CompletionsHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/v1/completions", h.Complete)
}

// Complete handles POST /v1/completions
func (h *CompletionsHandler) Complete(c *gin.Context) {
	var req llm.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": apperrors.CodeInvalidRequest})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required", "code": apperrors.CodeValidation})
		return
	}

	model := req.Model
	if model == "" {
		model = h.generator.ModelName()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	text, err := h.generator.GenerateWithModel(ctx, model, req.Parameters.MaxTokens, req.Prompt)
	if err != nil {
		h.logger.Error("Completion failed", zap.String("model", model), zap.Error(err))
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": "completion failed", "code": apperrors.CodeUpstream})
		return
	}

	h.logger.Info("Completion served", zap.String("model", model), zap.Int("prompt_chars", len(req.Prompt)))
	c.JSON(http.StatusOK, llm.CompletionResponse{
		ID:      h.newID(),
		Object:  "text_completion",
		Model:   model,
		Choices: []llm.CompletionChoice{{Text: text, Index: 0}},
	})
}
