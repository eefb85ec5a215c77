package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort    string
	ServerHost    string
	AllowedOrigin string
	Environment   Environment

	// Logging
	LogLevel  string
	LogFormat string

	// Generative model configuration
	LLMProvider    string
	GeminiAPIKey   string
	GeminiModel    string
	CompletionsURL string
	LLMTimeout     time.Duration
	LLMMaxTokens   int

	// Recipe database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Recipe source
	RecipeSourceURL    string
	RecipeFetchLimit   int
	RecipeFetchTimeout time.Duration

	// Session store configuration
	SessionStore    string
	SessionDBDriver string
	SessionDBPath   string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// S3 configuration
	S3BucketName string
	AWSRegion    string

	// Rate limiting for the generation endpoints
	RateLimit       int
	RateLimitWindow time.Duration
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load reads the configuration without validating it. The maintenance
// tools use it because they never talk to the model provider.
func Load() (*Config, error) {
	env := GetEnvironment()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := fromViper(v)
	cfg.Environment = env

	// Load configuration based on environment
	switch env {
	case CI:
		loadCIConfig(cfg)
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8000")
	v.SetDefault("allowed_origin", "http://localhost:3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("llm_provider", "gemini")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("llm_timeout", 60*time.Second)
	v.SetDefault("llm_max_tokens", 2048)

	v.SetDefault("db_port", "5432")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("recipe_fetch_limit", 50)
	v.SetDefault("recipe_fetch_timeout", 10*time.Second)

	v.SetDefault("session_store", "sql")
	v.SetDefault("session_db_driver", "sqlite")
	v.SetDefault("session_db_path", "grocery_lists.db")

	v.SetDefault("redis_port", "6379")
	v.SetDefault("redis_db", 0)

	v.SetDefault("s3_bucket_name", "mealplanner-grocery-lists")

	v.SetDefault("rate_limit", 20)
	v.SetDefault("rate_limit_window", time.Hour)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerPort:         v.GetString("server_port"),
		ServerHost:         v.GetString("server_host"),
		AllowedOrigin:      v.GetString("allowed_origin"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		LLMProvider:        strings.ToLower(v.GetString("llm_provider")),
		GeminiAPIKey:       v.GetString("gemini_api_key"),
		GeminiModel:        v.GetString("gemini_model"),
		CompletionsURL:     v.GetString("completions_url"),
		LLMTimeout:         v.GetDuration("llm_timeout"),
		LLMMaxTokens:       v.GetInt("llm_max_tokens"),
		DBHost:             v.GetString("db_host"),
		DBPort:             v.GetString("db_port"),
		DBUser:             v.GetString("db_user"),
		DBPassword:         v.GetString("db_password"),
		DBName:             v.GetString("db_name"),
		DBSSLMode:          v.GetString("db_ssl_mode"),
		RecipeSourceURL:    v.GetString("recipe_source_url"),
		RecipeFetchLimit:   v.GetInt("recipe_fetch_limit"),
		RecipeFetchTimeout: v.GetDuration("recipe_fetch_timeout"),
		SessionStore:       strings.ToLower(v.GetString("session_store")),
		SessionDBDriver:    strings.ToLower(v.GetString("session_db_driver")),
		SessionDBPath:      v.GetString("session_db_path"),
		RedisHost:          v.GetString("redis_host"),
		RedisPort:          v.GetString("redis_port"),
		RedisPassword:      v.GetString("redis_password"),
		RedisDB:            v.GetInt("redis_db"),
		RedisURL:           v.GetString("redis_url"),
		S3BucketName:       v.GetString("s3_bucket_name"),
		AWSRegion:          v.GetString("aws_region"),
		RateLimit:          v.GetInt("rate_limit"),
		RateLimitWindow:    v.GetDuration("rate_limit_window"),
	}
}

// loadCIConfig uses the GitHub Actions secrets exposed as TEST_* variables
func loadCIConfig(cfg *Config) {
	if pw := os.Getenv("TEST_DB_PASSWORD"); pw != "" {
		cfg.DBPassword = pw
	}
	if pw := os.Getenv("TEST_REDIS_PASSWORD"); pw != "" {
		cfg.RedisPassword = pw
	}
	if key := os.Getenv("TEST_GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
}

// loadDevConfig fills secrets that were not set in the environment from Docker secrets
func loadDevConfig(cfg *Config) {
	cfg.GeminiAPIKey = firstNonEmpty(cfg.GeminiAPIKey, readSecret("gemini_api_key"))
	cfg.DBPassword = firstNonEmpty(cfg.DBPassword, readSecret("db_password"))
	cfg.DBUser = firstNonEmpty(cfg.DBUser, readSecret("db_user"))
	cfg.RedisPassword = firstNonEmpty(cfg.RedisPassword, readSecret("redis_password"))
}

// loadProdConfig reads secrets ONLY from Docker secrets
func loadProdConfig(cfg *Config) {
	cfg.GeminiAPIKey = readSecret("gemini_api_key")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBUser = firstNonEmpty(readSecret("db_user"), cfg.DBUser)
	cfg.RedisPassword = readSecret("redis_password")
}

// RecipeDBConfigured reports whether a recipe database connection is configured
func (c *Config) RecipeDBConfigured() bool {
	return c.DBHost != "" && c.DBName != ""
}

// RedisConfigured reports whether a Redis server is configured
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
