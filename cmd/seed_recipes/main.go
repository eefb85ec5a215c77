package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/logger"
	"github.com/pageza/mealplanner/backend/internal/recipes"
)

func main() {
	file := flag.String("file", "recipes.json", "JSON file holding an array of recipe documents")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})
	defer log.Sync()

	if err := seed(cfg, log, *file); err != nil {
		logger.Exit(log, "Seeding failed", err)
	}
}

func seed(cfg *config.Config, log *zap.Logger, file string) error {
	if !cfg.RecipeDBConfigured() {
		return errors.New("DB_HOST and DB_NAME must be set to seed recipes")
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open seed file %s: %w", file, err)
	}
	docs, err := recipes.DecodeSeed(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", file, err)
	}

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("connect to recipe database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := database.EnsureRecipesTable(ctx, db.DB); err != nil {
		return fmt.Errorf("create recipes table: %w", err)
	}
	n, err := recipes.Seed(ctx, db.DB, docs)
	if err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	log.Info("Seeded recipes", zap.Int("count", n), zap.String("file", file))
	return nil
}
