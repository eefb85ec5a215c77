package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDailyCalories(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		want     int
	}{
		{"moderate", "moderate", 2763},
		{"moderately active alias", "moderately_active", 2763},
		{"sedentary", "sedentary", 2139},
		{"light", "light", 2451},
		{"lightly active with spaces", "Lightly Active", 2451},
		{"very active with hyphen", "very-active", 3075},
		{"extra active", "extra_active", 3387},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDailyCalories(5, 10, 180, tt.activity))
		})
	}
}

func TestEstimateDailyCaloriesUnknownActivityUsesModerate(t *testing.T) {
	for _, activity := range []string{"", "couch_potato", "ultra", "SEDENTARYISH"} {
		assert.Equal(t, 2763, EstimateDailyCalories(5, 10, 180, activity), activity)

		m, known := ActivityMultiplier(activity)
		assert.False(t, known)
		assert.Equal(t, DefaultActivityMultiplier, m)
	}
}

func TestEstimateDailyCaloriesIsPositiveAcrossValidProfiles(t *testing.T) {
	activities := []string{"sedentary", "moderate", "extra_active", "unknown"}
	for feet := 3; feet <= 8; feet++ {
		for _, inches := range []int{0, 11} {
			for _, weight := range []float64{50, 500} {
				for _, activity := range activities {
					got := EstimateDailyCalories(feet, inches, weight, activity)
					assert.Greater(t, got, 0)
					assert.Equal(t, got, EstimateDailyCalories(feet, inches, weight, activity))
				}
			}
		}
	}
}
