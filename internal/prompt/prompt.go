// Package prompt builds the text prompts sent to the generative model.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// Expected top-level keys of the model responses
const (
	MealPlanKey    = "meal_plan"
	GroceryListKey = "grocery_list"
)

// MealPlanSchema is the exact response shape requested for meal plans
const MealPlanSchema = `{
  "meal_plan": [
    {
      "day": "Monday",
      "breakfast": "Recipe name or meal description",
      "lunch": "Recipe name or meal description",
      "dinner": "Recipe name or meal description",
      "snacks": "Healthy snack options"
    }
  ]
}`

// GroceryListSchema is the exact response shape requested for grocery lists
const GroceryListSchema = `{
  "grocery_list": [
    {
      "item": "Chicken Breast",
      "quantity": "2 lbs",
      "category": "Protein",
      "link": null,
      "protein": "25g",
      "carbs": "0g",
      "fats": "3g",
      "calories": "165"
    }
  ]
}`

const formatRules = "Return ONLY a valid JSON object with this exact structure. Do not include any markdown formatting, explanations, or text outside the JSON."

// MealPlan builds the meal-plan prompt. The recipe catalog is optional.
func MealPlan(p model.Profile, dailyCalories int, catalog []model.RecipeSummary) string {
	var b strings.Builder

	b.WriteString("You are a meal planning assistant.\n")
	if len(catalog) > 0 {
		b.WriteString("Here is a list of available recipes:\n")
		b.WriteString(toJSON(catalog))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Create a personalized %d-day meal plan for a person with the following profile:\n", p.Days)
	fmt.Fprintf(&b, "- Height: %d feet, %d inches\n", p.HeightFeet, p.HeightInches)
	fmt.Fprintf(&b, "- Weight: %g lbs\n", p.Weight)
	fmt.Fprintf(&b, "- Activity Level: %s\n", strings.ReplaceAll(p.ActivityLevel, "_", " "))
	fmt.Fprintf(&b, "- Estimated Daily Calories: %d\n\n", dailyCalories)

	b.WriteString("Guidelines:\n")
	if len(catalog) > 0 {
		b.WriteString("- Prefer the provided recipes.\n")
	}
	b.WriteString("- Keep meals balanced across protein, carbohydrates and fats.\n")
	b.WriteString("- Reuse ingredients across days to minimize waste and cost.\n")
	b.WriteString("- Plan perishable ingredients for earlier days.\n")
	fmt.Fprintf(&b, "- The meal_plan array must contain exactly %d day objects.\n\n", p.Days)

	b.WriteString(formatRules)
	b.WriteString("\n")
	b.WriteString(MealPlanSchema)
	b.WriteString("\n")

	return b.String()
}

// GroceryList builds the grocery-extraction prompt for a meal plan
func GroceryList(mealPlanJSON string) string {
	var b strings.Builder

	b.WriteString("Analyze this meal plan and create a consolidated grocery list:\n\n")
	b.WriteString(mealPlanJSON)
	b.WriteString("\n\n")

	b.WriteString("Instructions:\n")
	b.WriteString("1. Extract all unique ingredients needed for the entire meal plan.\n")
	b.WriteString("2. Consolidate quantities using standard US grocery units (lbs, oz, cups, items).\n")
	b.WriteString("3. Categorize items (Produce, Protein, Dairy & Alternatives, Pantry, Beverages).\n")
	b.WriteString("4. For each item, provide protein, carbs, fats and calories per typical serving.\n")
	b.WriteString("5. Do not include store links (they cannot be verified). Set \"link\" to null.\n\n")

	b.WriteString(formatRules)
	b.WriteString("\n")
	b.WriteString(GroceryListSchema)
	b.WriteString("\n")

	return b.String()
}

// Correction asks the model to repair a response that failed to parse. The raw
// text is embedded verbatim.
func Correction(rawText, expectedKey, schema string) string {
	var b strings.Builder

	b.WriteString("The following text was intended to be a JSON object, but it failed to parse.\n")
	fmt.Fprintf(&b, "Please correct it to be a valid JSON object that strictly follows the specified format for a %s.\n", expectedKey)
	b.WriteString("Do not include any conversational text, markdown formatting (like ```json), or extra characters outside the JSON object.\n\n")

	b.WriteString("Original problematic text:\n")
	b.WriteString(rawText)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Expected JSON format (root object with %q key):\n", expectedKey)
	b.WriteString(schema)
	b.WriteString("\n")

	return b.String()
}

func toJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
