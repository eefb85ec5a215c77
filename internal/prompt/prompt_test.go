package prompt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/mealplanner/backend/internal/model"
)

func TestMealPlanPrompt(t *testing.T) {
	profile := model.Profile{HeightFeet: 5, HeightInches: 10, Weight: 180, ActivityLevel: "moderately_active", Days: 3}
	catalog := []model.RecipeSummary{{
		ID:          json.RawMessage(`12`),
		Name:        "Lentil Soup",
		Ingredients: json.RawMessage(`["lentils","carrot"]`),
	}}

	got := MealPlan(profile, 2763, catalog)

	assert.Contains(t, got, "3-day meal plan")
	assert.Contains(t, got, "5 feet, 10 inches")
	assert.Contains(t, got, "180 lbs")
	assert.Contains(t, got, "moderately active")
	assert.Contains(t, got, "Estimated Daily Calories: 2763")
	assert.Contains(t, got, `"name": "Lentil Soup"`)
	assert.Contains(t, got, "Reuse ingredients")
	assert.Contains(t, got, "exactly 3 day objects")
	assert.Contains(t, got, MealPlanSchema)
	assert.Contains(t, got, "Do not include any markdown")
}

func TestMealPlanPromptWithoutCatalog(t *testing.T) {
	got := MealPlan(model.Profile{HeightFeet: 6, Weight: 200, ActivityLevel: "sedentary", Days: 7}, 2400, nil)

	assert.NotContains(t, got, "available recipes")
	assert.NotContains(t, got, "Prefer the provided recipes")
	assert.Contains(t, got, "7-day meal plan")
}

func TestGroceryListPrompt(t *testing.T) {
	plan := `[{"day":"Monday","breakfast":"Oats"}]`
	got := GroceryList(plan)

	assert.Contains(t, got, plan)
	assert.Contains(t, got, "they cannot be verified")
	assert.Contains(t, got, GroceryListSchema)
}

func TestCorrectionPromptEmbedsRawTextVerbatim(t *testing.T) {
	raw := "Sure! Here is your plan: {\"meal_plan\": [ {\"day\": \"Monday\", }"
	got := Correction(raw, MealPlanKey, MealPlanSchema)

	assert.Contains(t, got, raw)
	assert.Contains(t, got, `"meal_plan" key`)
	assert.Contains(t, got, MealPlanSchema)
}
