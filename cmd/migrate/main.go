package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/logger"
)

func main() {
	sessions := flag.Bool("sessions", true, "Migrate the grocery list session table")
	recipes := flag.Bool("recipes", true, "Create the recipes table when a recipe database is configured")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})
	defer log.Sync()

	if err := migrate(cfg, log, *sessions, *recipes); err != nil {
		logger.Exit(log, "Migration failed", err)
	}
}

func migrate(cfg *config.Config, log *zap.Logger, sessions, recipes bool) error {
	if sessions && cfg.SessionStore == "sql" {
		db, err := database.OpenSessionDB(cfg)
		if err != nil {
			return fmt.Errorf("open session database: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			return fmt.Errorf("migrate session database: %w", err)
		}
		log.Info("Session database migrated", zap.String("driver", cfg.SessionDBDriver))
	}

	if recipes && cfg.RecipeDBConfigured() {
		db, err := database.New(cfg, log)
		if err != nil {
			return fmt.Errorf("connect to recipe database: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.EnsureRecipesTable(ctx, db.DB); err != nil {
			return fmt.Errorf("create recipes table: %w", err)
		}
		log.Info("Recipes table ready")
	}
	return nil
}
