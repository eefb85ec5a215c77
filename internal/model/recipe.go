package model

import "encoding/json"

// RecipeSummary is the slice of a recipe embedded in meal-plan prompts.
type RecipeSummary struct {
	ID          json.RawMessage `json:"id,omitempty"`
	Name        string          `json:"name"`
	Ingredients json.RawMessage `json:"ingredients,omitempty"`
}

// SummarizeRecipes extracts name, ingredients and id from opaque recipe blobs.
// Blobs that are not JSON objects or carry no name are skipped.
func SummarizeRecipes(blobs []json.RawMessage) []RecipeSummary {
	summaries := make([]RecipeSummary, 0, len(blobs))
	for _, blob := range blobs {
		var s RecipeSummary
		if err := json.Unmarshal(blob, &s); err != nil || s.Name == "" {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries
}
