// Package config manages pipeline configuration from environment variables
// and optional .env files.
package config

import "fmt"

// Config holds all configuration for the recommendation pipeline.
type Config struct {
	Catalog    CatalogConfig    `mapstructure:",squash"`
	Selection  SelectionConfig  `mapstructure:",squash"`
	Generation GenerationConfig `mapstructure:",squash"`
	Provider   ProviderConfig   `mapstructure:",squash"`
	Cache      CacheConfig      `mapstructure:",squash"`
	Logging    LoggingConfig    `mapstructure:",squash"`
	Metrics    MetricsConfig    `mapstructure:",squash"`
}

// CatalogConfig tunes the scoring and ranking pass.
type CatalogConfig struct {
	MinScore           float64 `mapstructure:"CATALOG_MIN_SCORE"`
	MaxRecommendations int     `mapstructure:"CATALOG_MAX_RECOMMENDATIONS"`
}

// SelectionConfig tunes the interactive selection loop.
type SelectionConfig struct {
	MaxPromptAttempts int  `mapstructure:"SELECTION_MAX_PROMPT_ATTEMPTS"`
	RequireConfirm    bool `mapstructure:"SELECTION_REQUIRE_CONFIRM"`
}

// GenerationConfig controls agent generation and deployment output.
type GenerationConfig struct {
	OutputDir           string `mapstructure:"GENERATION_OUTPUT_DIR"`
	EnterpriseRulesPath string `mapstructure:"GENERATION_ENTERPRISE_RULES_PATH"`
	ValidateConfigs     bool   `mapstructure:"GENERATION_VALIDATE_CONFIGS"`
}

// ProviderConfig selects and parameterizes the model provider.
type ProviderConfig struct {
	Name          string `mapstructure:"PROVIDER_NAME"`
	GenAIBaseURL  string `mapstructure:"PROVIDER_GENAI_BASE_URL"`
	GenAIAPIKey   string `mapstructure:"PROVIDER_GENAI_API_KEY"`
	GenAIModel    string `mapstructure:"PROVIDER_GENAI_MODEL"`
	TimeoutMs     int    `mapstructure:"PROVIDER_TIMEOUT_MS"`
	MaxTokens     int    `mapstructure:"PROVIDER_MAX_TOKENS"`
	RetryAttempts int    `mapstructure:"PROVIDER_RETRY_ATTEMPTS"`
}

// CacheConfig controls the Redis-backed analysis cache.
type CacheConfig struct {
	Enabled    bool   `mapstructure:"CACHE_ENABLED"`
	RedisURL   string `mapstructure:"CACHE_REDIS_URL"`
	TTLSeconds int    `mapstructure:"CACHE_TTL_SECONDS"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"METRICS_ENABLED"`
	Port    string `mapstructure:"METRICS_PORT"`
}

func validateConfig(cfg *Config) error {
	if cfg.Catalog.MinScore < 0 || cfg.Catalog.MinScore > 1 {
		return fmt.Errorf("CATALOG_MIN_SCORE must be in [0,1], got %v", cfg.Catalog.MinScore)
	}
	if cfg.Catalog.MaxRecommendations < 1 {
		return fmt.Errorf("CATALOG_MAX_RECOMMENDATIONS must be positive, got %d", cfg.Catalog.MaxRecommendations)
	}
	if cfg.Generation.OutputDir == "" {
		return fmt.Errorf("GENERATION_OUTPUT_DIR is required")
	}
	if cfg.Provider.Name == "genai" && cfg.Provider.GenAIBaseURL == "" {
		return fmt.Errorf("PROVIDER_GENAI_BASE_URL is required for the genai provider")
	}
	return nil
}
