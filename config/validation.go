package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validProviders     = map[string]bool{"gemini": true, "completions": true}
	validSessionStores = map[string]bool{"sql": true, "redis": true, "s3": true}
	validSQLDrivers    = map[string]bool{"sqlite": true, "postgres": true}
)

// ValidateConfig checks if the configuration is usable and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "is required"})
	}

	if !validProviders[cfg.LLMProvider] {
		errs = append(errs, ValidationError{"LLM_PROVIDER", fmt.Sprintf("unsupported provider %q", cfg.LLMProvider)})
	}
	if cfg.LLMProvider == "gemini" && cfg.GeminiAPIKey == "" {
		errs = append(errs, ValidationError{"GEMINI_API_KEY", "is required for the gemini provider"})
	}
	if cfg.LLMProvider == "completions" && cfg.CompletionsURL == "" {
		errs = append(errs, ValidationError{"COMPLETIONS_URL", "is required for the completions provider"})
	}
	if cfg.LLMTimeout <= 0 {
		errs = append(errs, ValidationError{"LLM_TIMEOUT", "must be a positive duration"})
	}
	if cfg.RecipeFetchTimeout <= 0 {
		errs = append(errs, ValidationError{"RECIPE_FETCH_TIMEOUT", "must be a positive duration"})
	}
	if cfg.RecipeFetchLimit <= 0 {
		errs = append(errs, ValidationError{"RECIPE_FETCH_LIMIT", "must be positive"})
	}

	if !validSessionStores[cfg.SessionStore] {
		errs = append(errs, ValidationError{"SESSION_STORE", fmt.Sprintf("unsupported store %q", cfg.SessionStore)})
	}
	switch cfg.SessionStore {
	case "sql":
		if !validSQLDrivers[cfg.SessionDBDriver] {
			errs = append(errs, ValidationError{"SESSION_DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.SessionDBDriver)})
		}
		if cfg.SessionDBDriver == "postgres" && !cfg.RecipeDBConfigured() {
			errs = append(errs, ValidationError{"DB_HOST", "is required when sessions are stored in postgres"})
		}
	case "redis":
		if !cfg.RedisConfigured() {
			errs = append(errs, ValidationError{"REDIS_URL", "REDIS_URL or REDIS_HOST is required for the redis session store"})
		}
	case "s3":
		if cfg.S3BucketName == "" {
			errs = append(errs, ValidationError{"S3_BUCKET_NAME", "is required for the s3 session store"})
		}
	}

	if cfg.RecipeDBConfigured() && cfg.RecipeSourceURL != "" {
		errs = append(errs, ValidationError{"RECIPE_SOURCE_URL", "cannot be combined with DB_HOST"})
	}

	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}
