package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	ProviderURL     string
	ProviderTimeout time.Duration
	LogLevel        string
	Port            string
	FitSettle       time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Port:     getEnvOrDefault("PORT", "8080"),
	}

	// Required environment variables
	if cfg.ProviderURL = os.Getenv("PROVIDER_URL"); cfg.ProviderURL == "" {
		return nil, fmt.Errorf("PROVIDER_URL environment variable is required")
	}

	var err error
	cfg.ProviderTimeout, err = getDurationOrDefault("PROVIDER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.FitSettle, err = getDurationOrDefault("FIT_SETTLE", 100*time.Millisecond)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationOrDefault parses an environment variable as a duration,
// falling back to the default when unset.
func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration (e.g. 30s): %w", key, err)
	}
	return d, nil
}
