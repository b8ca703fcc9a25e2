// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port     string
	Env      string // "development", "staging", "production"
	LogLevel string

	// Model artifact
	ModelPath string // Path to the serialized classifier package

	// Scoring behavior
	StrictCategorical bool // Reject unknown categorical tokens instead of code-0 fallback

	// HTTP hardening
	AllowedOrigins []string
	RateLimitRPM   int

	// Observability
	OTLPEndpoint string // OTLP gRPC endpoint for tracing (empty = disabled)
}

// Defaults
const (
	DefaultPort      = "5000"
	DefaultEnv       = "development"
	DefaultLogLevel  = "info"
	DefaultModelPath = "best_model/rf_model_with_thresholds.json"
	DefaultRateRPM   = 120
)

// Load reads configuration from environment variables.
// It loads .env file if present (for local development).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", DefaultPort),
		Env:               getEnv("ENV", DefaultEnv),
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		ModelPath:         getEnv("MODEL_PATH", DefaultModelPath),
		StrictCategorical: getEnvBool("STRICT_CATEGORICAL", false),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		RateLimitRPM:      int(getEnvInt64("RATE_LIMIT_RPM", DefaultRateRPM)),
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configuration values are usable. Note the model
// artifact path is not checked here: a missing artifact degrades the
// service at runtime rather than failing startup.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("MODEL_PATH must not be empty")
	}
	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d", c.RateLimitRPM)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
