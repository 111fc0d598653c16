// ABOUTME: Centralized configuration for the Oniromante core
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the journaling core.
type Config struct {
	// Charm storage settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// Provider settings
	OpenAIKey  string
	ChatModel  string
	ImageModel string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		CharmHost:   getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName: getEnv("CHARM_DB", "oniromante"),
		AutoSync:    getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		ChatModel:   getEnv("ONIROMANTE_OPENAI_MODEL", "gpt-4o-mini"),
		ImageModel:  getEnv("ONIROMANTE_IMAGE_MODEL", "dall-e-3"),
		Timeout:     getEnvDuration("ONIROMANTE_AI_TIMEOUT", 30*time.Second),
		MaxRetries:  getEnvInt("ONIROMANTE_AI_MAX_RETRIES", 3),
		RetryDelay:  getEnvDuration("ONIROMANTE_AI_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("ONIROMANTE_AI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("ONIROMANTE_AI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
