package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/llm"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/model"
	"github.com/pageza/mealplanner/backend/internal/prompt"
	"github.com/pageza/mealplanner/backend/internal/session"
)

var errEmptyGroceryList = errors.New("grocery list is empty")

// GroceryListService extracts grocery lists from meal plans and stores them by session
type GroceryListService struct {
	reconciler Reconciler
	store      session.Store
	metrics    *metrics.Metrics
	logger     *zap.Logger
	newID      func() string
	now        func() time.Time
}

// NewGroceryListService creates a new GroceryListService
func NewGroceryListService(reconciler Reconciler, store session.Store, m *metrics.Metrics, logger *zap.Logger) *GroceryListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroceryListService{
		reconciler: reconciler,
		store:      store,
		metrics:    m,
		logger:     logger,
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

// Create asks the model for a grocery list and persists it under a new session id
func (s *GroceryListService) Create(ctx context.Context, mealPlan []json.RawMessage) (*model.GroceryListResult, error) {
	if len(mealPlan) == 0 {
		return nil, apperrors.NewValidationError("meal_plan", "must contain at least 1 day")
	}
	if err := validateMealPlanEntries(mealPlan); err != nil {
		return nil, err
	}

	planJSON, err := json.MarshalIndent(mealPlan, "", "  ")
	if err != nil {
		return nil, apperrors.NewValidationError("meal_plan", "must be valid JSON")
	}

	var items []model.GroceryItem
	res, err := s.reconciler.Reconcile(ctx, llm.Request{
		Prompt:      prompt.GroceryList(string(planJSON)),
		ExpectedKey: prompt.GroceryListKey,
		Schema:      prompt.GroceryListSchema,
		Validate: func(payload json.RawMessage) error {
			decoded, err := decodeGroceryList(payload)
			if err != nil {
				return err
			}
			items = decoded
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode grocery list: %w", err)
	}

	sessionID := s.newID()
	if err := s.store.Create(ctx, sessionID, payload); err != nil {
		return nil, err
	}
	s.metrics.SessionCreated()

	s.logger.Info("grocery list stored",
		zap.String("session_id", sessionID),
		zap.Int("items", len(items)),
		zap.Int("corrections", res.Corrections))

	return &model.GroceryListResult{
		SessionID:   sessionID,
		GroceryList: items,
		CreatedAt:   s.now().UTC(),
		Corrected:   res.Corrections > 0,
	}, nil
}

// Get returns the grocery list stored under sessionID
func (s *GroceryListService) Get(ctx context.Context, sessionID string) ([]model.GroceryItem, error) {
	payload, found, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &apperrors.NotFoundError{Resource: "grocery list", ID: sessionID}
	}

	var items []model.GroceryItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("stored grocery list %s is corrupt: %w", sessionID, err)
	}
	return items, nil
}

// Delete removes the grocery list stored under sessionID. Unknown ids are ignored.
func (s *GroceryListService) Delete(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

// validateMealPlanEntries requires every entry to be a JSON object
func validateMealPlanEntries(mealPlan []json.RawMessage) error {
	fields := map[string]string{}
	for i, entry := range mealPlan {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
			fields[fmt.Sprintf("meal_plan[%d]", i)] = "must be an object"
		}
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func decodeGroceryList(payload json.RawMessage) ([]model.GroceryItem, error) {
	var items []model.GroceryItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("grocery list is not an array of items: %w", err)
	}
	if len(items) == 0 {
		return nil, errEmptyGroceryList
	}
	for i, item := range items {
		if item.Item == "" {
			return nil, fmt.Errorf("item %d has no name", i+1)
		}
	}
	return items, nil
}
