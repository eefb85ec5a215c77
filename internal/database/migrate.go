package database

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// RunMigrations creates the session tables
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.GroceryListRecord{}); err != nil {
		return fmt.Errorf("failed to migrate grocery lists: %w", err)
	}
	return nil
}

// EnsureRecipesTable creates the recipes table if it does not exist
func EnsureRecipesTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			data JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create recipes table: %w", err)
	}
	return nil
}
