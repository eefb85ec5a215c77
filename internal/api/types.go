package api

import (
	"encoding/json"
	"time"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// MealPlanRequest is the body of POST /mealplan
type MealPlanRequest struct {
	HeightFeet    int     `json:"heightFeet"`
	HeightInches  int     `json:"heightInches"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Days          *int    `json:"days,omitempty"`
}

// ToProfile converts the request, applying the default plan length
func (r MealPlanRequest) ToProfile() model.Profile {
	days := model.DefaultPlanDays
	if r.Days != nil {
		days = *r.Days
	}
	return model.Profile{
		HeightFeet:    r.HeightFeet,
		HeightInches:  r.HeightInches,
		Weight:        r.Weight,
		ActivityLevel: r.ActivityLevel,
		Days:          days,
	}
}

// MealPlanResponse is returned by POST /mealplan
type MealPlanResponse struct {
	MealPlan      []model.DailyMealEntry `json:"meal_plan"`
	DailyCalories int                    `json:"daily_calories"`
	GeneratedAt   time.Time              `json:"generated_at"`
}

// GroceryListRequest is the body of POST /grocery-list
type GroceryListRequest struct {
	MealPlan []json.RawMessage `json:"meal_plan"`
}

// GroceryListResponse is returned by POST /grocery-list
type GroceryListResponse struct {
	SessionID   string              `json:"session_id"`
	GroceryList []model.GroceryItem `json:"grocery_list"`
	CreatedAt   time.Time           `json:"created_at"`
}

// StoredGroceryListResponse is returned by GET /grocery-list/:session_id
type StoredGroceryListResponse struct {
	SessionID   string              `json:"session_id"`
	GroceryList []model.GroceryItem `json:"grocery_list"`
	RetrievedAt time.Time           `json:"retrieved_at"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message   string    `json:"message"`
	DeletedAt time.Time `json:"deleted_at"`
}

// RecipesResponse is returned by GET /recipes
type RecipesResponse struct {
	Recipes []json.RawMessage `json:"recipes"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error       string            `json:"error"`
	Code        string            `json:"code"`
	Fields      map[string]string `json:"fields,omitempty"`
	State       string            `json:"state,omitempty"`
	RawResponse string            `json:"raw_response,omitempty"`
	Service     string            `json:"service,omitempty"`
}
