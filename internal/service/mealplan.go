package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/llm"
	"github.com/pageza/mealplanner/backend/internal/model"
	"github.com/pageza/mealplanner/backend/internal/nutrition"
	"github.com/pageza/mealplanner/backend/internal/prompt"
	"github.com/pageza/mealplanner/backend/internal/recipes"
)

// DefaultCatalogLimit is how many recipes are embedded in a meal-plan prompt
const DefaultCatalogLimit = 50

// MealPlanService generates meal plans
type MealPlanService struct {
	reconciler   Reconciler
	recipes      recipes.Source
	cache        *recipes.Cache
	catalogKey   string
	catalogLimit int
	logger       *zap.Logger
	now          func() time.Time
}

// NewMealPlanService creates a new MealPlanService. source may be nil, in which
// case prompts carry no recipe catalog.
func NewMealPlanService(reconciler Reconciler, source recipes.Source, cache *recipes.Cache, catalogLimit int, logger *zap.Logger) *MealPlanService {
	if catalogLimit <= 0 {
		catalogLimit = DefaultCatalogLimit
	}
	if cache == nil {
		cache = recipes.NewCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealPlanService{
		reconciler:   reconciler,
		recipes:      source,
		cache:        cache,
		catalogKey:   "catalog:" + uuid.NewString(),
		catalogLimit: catalogLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// Generate produces a meal plan with exactly profile.Days entries
func (s *MealPlanService) Generate(ctx context.Context, profile model.Profile) (*model.MealPlan, error) {
	if profile.Days == 0 {
		profile.Days = model.DefaultPlanDays
	}
	if err := validateStruct(profile); err != nil {
		return nil, err
	}

	calories := nutrition.EstimateDailyCalories(profile.HeightFeet, profile.HeightInches, profile.Weight, profile.ActivityLevel)
	if _, known := nutrition.ActivityMultiplier(profile.ActivityLevel); !known {
		s.logger.Info("unknown activity level, using moderate multiplier", zap.String("activity_level", profile.ActivityLevel))
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var entries []model.DailyMealEntry
	res, err := s.reconciler.Reconcile(ctx, llm.Request{
		Prompt:      prompt.MealPlan(profile, calories, catalog),
		ExpectedKey: prompt.MealPlanKey,
		Schema:      prompt.MealPlanSchema,
		Validate: func(payload json.RawMessage) error {
			decoded, err := decodeMealPlan(payload, profile.Days)
			if err != nil {
				return err
			}
			entries = decoded
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("meal plan generated",
		zap.Int("days", len(entries)),
		zap.Int("daily_calories", calories),
		zap.Int("corrections", res.Corrections))

	return &model.MealPlan{
		Days:          entries,
		DailyCalories: calories,
		GeneratedAt:   s.now().UTC(),
		Corrected:     res.Corrections > 0,
	}, nil
}

// loadCatalog refreshes the recipe catalog, falling back to the last cached
// catalog when the source is unavailable.
func (s *MealPlanService) loadCatalog(ctx context.Context) ([]model.RecipeSummary, error) {
	if s.recipes == nil {
		return nil, nil
	}

	blobs, err := s.recipes.Fetch(ctx, s.catalogLimit)
	if err != nil {
		if cached, ok := s.cache.Get(s.catalogKey); ok {
			s.logger.Warn("recipe source unavailable, using cached catalog", zap.Error(err), zap.Int("recipes", len(cached)))
			return cached, nil
		}
		return nil, &apperrors.UpstreamError{Service: "recipe source", Cause: err}
	}

	catalog := model.SummarizeRecipes(blobs)
	s.cache.Set(s.catalogKey, catalog)
	return catalog, nil
}

func decodeMealPlan(payload json.RawMessage, days int) ([]model.DailyMealEntry, error) {
	var entries []model.DailyMealEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("meal plan is not an array of day objects: %w", err)
	}
	if len(entries) != days {
		return nil, fmt.Errorf("meal plan has %d days, expected %d", len(entries), days)
	}
	for i, entry := range entries {
		if field := entry.MissingField(); field != "" {
			return nil, fmt.Errorf("day %d is missing %q", i+1, field)
		}
	}
	return entries, nil
}
