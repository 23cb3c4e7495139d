package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from the environment, with .env files layered in
// from the working directory or the project root.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env in a few likely locations so the binary works the
// same when run from the repo root, a subdirectory, or a test.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// setDefaults registers every key so viper picks up env overrides during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("CATALOG_MIN_SCORE", 0.2)
	v.SetDefault("CATALOG_MAX_RECOMMENDATIONS", 8)

	v.SetDefault("SELECTION_MAX_PROMPT_ATTEMPTS", 10)
	v.SetDefault("SELECTION_REQUIRE_CONFIRM", true)

	v.SetDefault("GENERATION_OUTPUT_DIR", "./generated-agents")
	v.SetDefault("GENERATION_ENTERPRISE_RULES_PATH", "")
	v.SetDefault("GENERATION_VALIDATE_CONFIGS", true)

	v.SetDefault("PROVIDER_NAME", "static")
	v.SetDefault("PROVIDER_GENAI_BASE_URL", "")
	v.SetDefault("PROVIDER_GENAI_API_KEY", "")
	v.SetDefault("PROVIDER_GENAI_MODEL", "gemini-1.5-pro")
	v.SetDefault("PROVIDER_TIMEOUT_MS", 60000)
	v.SetDefault("PROVIDER_MAX_TOKENS", 4096)
	v.SetDefault("PROVIDER_RETRY_ATTEMPTS", 3)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_REDIS_URL", "localhost:6379")
	v.SetDefault("CACHE_TTL_SECONDS", 3600)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("METRICS_ENABLED", false)
	v.SetDefault("METRICS_PORT", "9090")
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
