package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "recipes")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("ALLOWED_ORIGIN", "https://planner.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "https://planner.example.com", cfg.AllowedOrigin)
	assert.True(t, cfg.RecipeDBConfigured())
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "dev-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 50, cfg.RecipeFetchLimit)
	assert.Equal(t, "sql", cfg.SessionStore)
	assert.Equal(t, "sqlite", cfg.SessionDBDriver)
	assert.False(t, cfg.RecipeDBConfigured())
	assert.False(t, cfg.RedisConfigured())
}

func TestLoadConfigReadsDockerSecrets(t *testing.T) {
	secretsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "gemini_api_key"), []byte("secret-key\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(secretsDir, "db_password"), []byte("postpass"), 0644))

	t.Setenv("ENV", "production")
	t.Setenv("CI", "")
	t.Setenv("SECRETS_DIR", secretsDir)
	t.Setenv("GEMINI_API_KEY", "ignored-in-production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.GeminiAPIKey)
	assert.Equal(t, "postpass", cfg.DBPassword)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:         "8000",
			LLMProvider:        "gemini",
			GeminiAPIKey:       "key",
			LLMTimeout:         time.Minute,
			RecipeFetchLimit:   50,
			RecipeFetchTimeout: 10 * time.Second,
			SessionStore:       "sql",
			SessionDBDriver:    "sqlite",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing api key", func(c *Config) { c.GeminiAPIKey = "" }, "GEMINI_API_KEY"},
		{"unknown provider", func(c *Config) { c.LLMProvider = "openai" }, "LLM_PROVIDER"},
		{"completions without url", func(c *Config) { c.LLMProvider = "completions" }, "COMPLETIONS_URL"},
		{"unknown store", func(c *Config) { c.SessionStore = "memcached" }, "SESSION_STORE"},
		{"redis store without redis", func(c *Config) { c.SessionStore = "redis" }, "REDIS_URL"},
		{"s3 store without bucket", func(c *Config) { c.SessionStore = "s3" }, "S3_BUCKET_NAME"},
		{"zero timeout", func(c *Config) { c.LLMTimeout = 0 }, "LLM_TIMEOUT"},
		{"two recipe sources", func(c *Config) {
			c.DBHost, c.DBName, c.RecipeSourceURL = "db", "recipes", "http://recipes"
		}, "RECIPE_SOURCE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Production, ParseEnvironment(" PROD "))
	assert.Equal(t, Test, ParseEnvironment("test"))
	assert.Equal(t, CI, ParseEnvironment("ci"))
	assert.Equal(t, Development, ParseEnvironment(""))
	assert.Equal(t, Development, ParseEnvironment("staging"))
	assert.True(t, Development.IsDevelopment())
	assert.True(t, Production.IsProduction())
}
