// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Verifies defaults, overrides and validation bounds
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHARM_HOST", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ONIROMANTE_OPENAI_MODEL", "")
	t.Setenv("ONIROMANTE_AI_TIMEOUT", "")
	t.Setenv("ONIROMANTE_AI_MAX_RETRIES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CharmHost != "cloud.charm.sh" {
		t.Errorf("CharmHost = %q, want default", cfg.CharmHost)
	}
	if cfg.CharmDBName != "oniromante" {
		t.Errorf("CharmDBName = %q, want %q", cfg.CharmDBName, "oniromante")
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want default", cfg.ChatModel)
	}
	if cfg.ImageModel != "dall-e-3" {
		t.Errorf("ImageModel = %q, want default", cfg.ImageModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHARM_HOST", "charm.example.com")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ONIROMANTE_OPENAI_MODEL", "gpt-4o")
	t.Setenv("ONIROMANTE_AI_TIMEOUT", "45s")
	t.Setenv("ONIROMANTE_AI_MAX_RETRIES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CharmHost != "charm.example.com" {
		t.Errorf("CharmHost = %q", cfg.CharmHost)
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %q", cfg.OpenAIKey)
	}
	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q", cfg.ChatModel)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d", cfg.MaxRetries)
	}
}

func TestLoad_InvalidRetriesRejected(t *testing.T) {
	t.Setenv("ONIROMANTE_AI_MAX_RETRIES", "11")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for out-of-range retries")
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("ONIROMANTE_AI_TIMEOUT", "not-a-duration")
	t.Setenv("ONIROMANTE_AI_MAX_RETRIES", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timeout != 30*time.Second || cfg.MaxRetries != 3 {
		t.Errorf("malformed env should fall back to defaults, got %+v", cfg)
	}
}
