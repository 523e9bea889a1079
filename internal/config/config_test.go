package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "DATABASE_URL", "GEMINI_API_KEY",
		"RERANKER_URL", "MATCH_CONCURRENCY", "MATCH_POOL_SIZE", "DEBUG", "LOG_JSON",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 50, cfg.PoolSize)
}

func TestLoad_FileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9000,
		"database_url": "postgres://file",
		"gemini_api_key": "file-key",
		"pool_size": 25
	}`), 0o600))

	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("MATCH_CONCURRENCY", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL, "environment beats the file")
	assert.Equal(t, "file-key", cfg.GeminiAPIKey)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 25, cfg.PoolSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Port: 8080, DatabaseURL: "postgres://x", GeminiAPIKey: "k",
		Concurrency: 4, PoolSize: 50,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing database", func(c *Config) { c.DatabaseURL = "" }},
		{"missing api key", func(c *Config) { c.GeminiAPIKey = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"bad concurrency", func(c *Config) { c.Concurrency = 0 }},
		{"bad pool size", func(c *Config) { c.PoolSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
