package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Env            string   `envconfig:"APP_ENV" default:"development"`
	Port           int      `envconfig:"PORT" default:"8080"`
	RedisURI       string   `envconfig:"REDIS_URI" default:"redis://localhost:6379/0"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	// EncryptionKey is a base64-encoded 32-byte AES key protecting the
	// stored Gemini API key override. Optional: without it, overrides are
	// stored in plain text.
	EncryptionKey string `envconfig:"ENCRYPTION_KEY"`
	Gemini        GeminiConfig
	Limiter       RateLimiterConfig
}

// GeminiConfig configures the external analysis service.
type GeminiConfig struct {
	// APIKey is the environment-provided default; a user-saved key in
	// settings takes precedence.
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"30s"`
}

// RateLimiterConfig configures the per-IP request limiter.
type RateLimiterConfig struct {
	Enabled     bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	MaxRequests int           `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"60"`
	Window      time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"2m"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Limiter.MaxRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be at least 1")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be specified")
	}
	return nil
}

// IsProduction returns true when APP_ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ServerAddr is the listen address derived from the configured port.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
