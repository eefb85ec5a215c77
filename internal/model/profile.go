package model

import "time"

// DefaultPlanDays is used when a meal-plan request omits days
const DefaultPlanDays = 7

// MaxPlanDays is the longest plan that can be requested
const MaxPlanDays = 14

// Profile carries the physical and activity attributes a plan is generated for.
type Profile struct {
	HeightFeet    int     `json:"heightFeet" validate:"required,min=3,max=8"`
	HeightInches  int     `json:"heightInches" validate:"min=0,max=11"`
	Weight        float64 `json:"weight" validate:"required,min=50,max=500"`
	ActivityLevel string  `json:"activityLevel" validate:"required,max=64"`
	Days          int     `json:"days" validate:"min=1,max=14"`
}

// MealPlan is the validated result of a meal-plan generation. It is never persisted.
type MealPlan struct {
	Days          []DailyMealEntry `json:"meal_plan"`
	DailyCalories int              `json:"daily_calories"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Corrected     bool             `json:"-"`
}

// DailyMealEntry describes the meals of a single day in free text.
type DailyMealEntry struct {
	Day       FlexString `json:"day"`
	Breakfast string     `json:"breakfast"`
	Lunch     string     `json:"lunch"`
	Dinner    string     `json:"dinner"`
	Snacks    string     `json:"snacks"`
}

// MissingField returns the name of the first empty field, or "" when the entry is complete
func (e DailyMealEntry) MissingField() string {
	switch {
	case e.Day.Value == "":
		return "day"
	case e.Breakfast == "":
		return "breakfast"
	case e.Lunch == "":
		return "lunch"
	case e.Dinner == "":
		return "dinner"
	case e.Snacks == "":
		return "snacks"
	}
	return ""
}
