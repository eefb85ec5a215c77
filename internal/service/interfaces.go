package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/mealplanner/backend/internal/llm"
	"github.com/pageza/mealplanner/backend/internal/model"
)

// Reconciler turns a prompt into a validated JSON document
type Reconciler interface {
	Reconcile(ctx context.Context, req llm.Request) (*llm.Result, error)
}

// IMealPlanService defines the interface for meal-plan generation
type IMealPlanService interface {
	Generate(ctx context.Context, profile model.Profile) (*model.MealPlan, error)
}

// IGroceryListService defines the interface for grocery list operations
type IGroceryListService interface {
	Create(ctx context.Context, mealPlan []json.RawMessage) (*model.GroceryListResult, error)
	Get(ctx context.Context, sessionID string) ([]model.GroceryItem, error)
	Delete(ctx context.Context, sessionID string) error
}

// IRecipeService defines the interface for recipe listing
type IRecipeService interface {
	List(ctx context.Context, limit int) ([]json.RawMessage, error)
}
