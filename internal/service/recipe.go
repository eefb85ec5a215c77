package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/recipes"
)

// Recipe listing limits
const (
	DefaultRecipeLimit = 30
	MaxRecipeLimit     = 500
)

var errNoRecipeSource = errors.New("no recipe source configured")

// RecipeService lists raw recipe documents
type RecipeService struct {
	source recipes.Source
}

// NewRecipeService creates a new RecipeService. source may be nil.
func NewRecipeService(source recipes.Source) *RecipeService {
	return &RecipeService{source: source}
}

// List returns up to limit recipes
func (s *RecipeService) List(ctx context.Context, limit int) ([]json.RawMessage, error) {
	if limit < 1 || limit > MaxRecipeLimit {
		return nil, apperrors.NewValidationError("limit", "must be between 1 and 500")
	}
	if s.source == nil {
		return nil, &apperrors.UpstreamError{Service: "recipe source", Cause: errNoRecipeSource}
	}

	docs, err := s.source.Fetch(ctx, limit)
	if err != nil {
		return nil, &apperrors.UpstreamError{Service: "recipe source", Cause: err}
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	return docs, nil
}
