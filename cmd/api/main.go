package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/api"
	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/llm"
	"github.com/pageza/mealplanner/backend/internal/logger"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/middleware"
	"github.com/pageza/mealplanner/backend/internal/recipes"
	"github.com/pageza/mealplanner/backend/internal/router"
	"github.com/pageza/mealplanner/backend/internal/server"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: cfg.Environment.IsDevelopment(),
	})
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		logger.Exit(log, "Server error", err)
	}
	log.Info("Server stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	checks := map[string]api.HealthCheck{}

	// Recipe catalog
	var source recipes.Source
	switch {
	case cfg.RecipeDBConfigured():
		db, err := database.New(cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()
		source = recipes.NewPostgresSource(db.DB, cfg.RecipeFetchTimeout)
		checks["database"] = db.HealthCheck
	case cfg.RecipeSourceURL != "":
		source = recipes.NewHTTPSource(cfg.RecipeSourceURL, cfg.RecipeFetchTimeout)
	default:
		log.Warn("No recipe source configured; meal plans will be generated without a catalog")
	}

	// Generative model
	generator, closeGenerator, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGenerator()
	reconciler := llm.NewReconciler(generator, cfg.LLMProvider, cfg.LLMTimeout, log, m)

	// Redis backs the rate limiter and optionally the session store
	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		redisClient, err = database.NewRedisClient(cfg, log)
		if err != nil {
			if cfg.SessionStore == "redis" {
				return err
			}
			log.Warn("Redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	store, err := newSessionStore(ctx, cfg, redisClient, log)
	if err != nil {
		return err
	}
	checks["session_store"] = store.Ping

	mealPlans := service.NewMealPlanService(reconciler, source, recipes.NewCache(), cfg.RecipeFetchLimit, log)
	groceries := service.NewGroceryListService(reconciler, store, m, log)
	recipeList := service.NewRecipeService(source)

	var limiter *middleware.RateLimiter
	if redisClient != nil && cfg.RateLimit > 0 {
		limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimit, cfg.RateLimitWindow, log)
	}

	handler := router.SetupRouter(router.Handlers{
		MealPlan:    api.NewMealPlanHandler(mealPlans, log),
		GroceryList: api.NewGroceryListHandler(groceries, log),
		Recipes:     api.NewRecipeHandler(recipeList, log),
		Health:      api.NewHealthHandler(checks, log),
	}, router.Options{
		AllowedOrigin: cfg.AllowedOrigin,
		Metrics:       m,
		RateLimiter:   limiter,
	}, log)

	srv := server.New(cfg, handler, log)
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newGenerator(ctx context.Context, cfg *config.Config) (llm.TextGenerator, func(), error) {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:    cfg.GeminiAPIKey,
			Model:     cfg.GeminiModel,
			MaxTokens: cfg.LLMMaxTokens,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create gemini client: %w", err)
		}
		return client, func() { client.Close() }, nil
	case "completions":
		client := llm.NewCompletionsClient(cfg.CompletionsURL, cfg.GeminiModel, cfg.LLMMaxTokens, cfg.LLMTimeout)
		return client, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported llm provider %q", cfg.LLMProvider)
	}
}

func newSessionStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client, log *zap.Logger) (session.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		if redisClient == nil {
			return nil, errors.New("session store redis requires REDIS_HOST or REDIS_URL")
		}
		log.Info("Using Redis session store")
		return session.NewRedisStore(redisClient), nil
	case "s3":
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		log.Info("Using S3 session store", zap.String("bucket", s3Cfg.BucketName))
		return session.NewS3Store(s3Cfg.Client, s3Cfg.BucketName), nil
	default:
		db, err := database.OpenSessionDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			return nil, err
		}
		log.Info("Using SQL session store", zap.String("driver", cfg.SessionDBDriver))
		return session.NewSQLStore(db), nil
	}
}
