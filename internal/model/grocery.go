package model

import (
	"encoding/json"
	"time"
)

// GroceryItem is one consolidated line of a grocery list. Link is whatever the
// model produced and is never fetched or validated.
type GroceryItem struct {
	Item     string     `json:"item"`
	Quantity FlexString `json:"quantity"`
	Category string     `json:"category"`
	Link     *string    `json:"link"`
	Protein  FlexString `json:"protein"`
	Carbs    FlexString `json:"carbs"`
	Fats     FlexString `json:"fats"`
	Calories FlexString `json:"calories"`
}

// UnmarshalJSON accepts "cals" as an alias of "calories"
func (g *GroceryItem) UnmarshalJSON(data []byte) error {
	type plain GroceryItem
	aux := struct {
		*plain
		Cals *FlexString `json:"cals"`
	}{plain: (*plain)(g)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if g.Calories.Value == "" && aux.Cals != nil {
		g.Calories = *aux.Cals
	}
	return nil
}

// GroceryListResult is returned when a grocery list is created
type GroceryListResult struct {
	SessionID   string        `json:"session_id"`
	GroceryList []GroceryItem `json:"grocery_list"`
	CreatedAt   time.Time     `json:"created_at"`
	Corrected   bool          `json:"-"`
}

// GroceryListRecord is a persisted grocery list row. SessionID is not unique;
// reads return the newest row for an id.
type GroceryListRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SessionID string    `gorm:"size:64;index;not null"`
	ListData  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName keeps the table name stable across gorm naming strategies
func (GroceryListRecord) TableName() string {
	return "grocery_lists"
}
