package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Catalog.MinScore)
	assert.Equal(t, 8, cfg.Catalog.MaxRecommendations)
	assert.Equal(t, "static", cfg.Provider.Name)
	assert.Equal(t, "./generated-agents", cfg.Generation.OutputDir)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_MIN_SCORE", "0.5")
	t.Setenv("CATALOG_MAX_RECOMMENDATIONS", "3")
	t.Setenv("PROVIDER_NAME", "genai")
	t.Setenv("PROVIDER_GENAI_BASE_URL", "http://localhost:8000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Catalog.MinScore)
	assert.Equal(t, 3, cfg.Catalog.MaxRecommendations)
	assert.Equal(t, "genai", cfg.Provider.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidMinScore(t *testing.T) {
	t.Setenv("CATALOG_MIN_SCORE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_MIN_SCORE")
}

func TestLoadRequiresBaseURLForGenAI(t *testing.T) {
	t.Setenv("PROVIDER_NAME", "genai")
	t.Setenv("PROVIDER_GENAI_BASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_GENAI_BASE_URL")
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}
