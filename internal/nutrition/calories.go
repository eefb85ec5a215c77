// Package nutrition estimates daily calorie needs.
package nutrition

import "strings"

// The estimate assumes a 30 year old male. Age and sex are not collected, so
// the result is an approximation for everyone else.
const (
	assumedAge     = 30
	maleAdjustment = 5

	cmPerInch = 2.54
	kgPerLb   = 0.453592
)

// DefaultActivityMultiplier applies to activity levels missing from the table (moderate).
const DefaultActivityMultiplier = 1.55

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"light":             1.375,
	"lightly_active":    1.375,
	"moderate":          1.55,
	"moderately_active": 1.55,
	"active":            1.725,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// ActivityMultiplier returns the multiplier for an activity tag and whether the tag was recognised.
func ActivityMultiplier(activity string) (float64, bool) {
	m, ok := activityMultipliers[normalizeActivity(activity)]
	if !ok {
		return DefaultActivityMultiplier, false
	}
	return m, true
}

// EstimateDailyCalories returns total daily energy expenditure using Mifflin-St Jeor,
// truncated to whole calories.
func EstimateDailyCalories(heightFeet, heightInches int, weightLb float64, activity string) int {
	heightCm := float64(heightFeet*12+heightInches) * cmPerInch
	weightKg := weightLb * kgPerLb

	bmr := 10*weightKg + 6.25*heightCm - 5*assumedAge + maleAdjustment
	multiplier, _ := ActivityMultiplier(activity)

	return int(bmr * multiplier)
}

func normalizeActivity(activity string) string {
	tag := strings.ToLower(strings.TrimSpace(activity))
	return strings.NewReplacer("-", "_", " ", "_").Replace(tag)
}
