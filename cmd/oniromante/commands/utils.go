// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Service construction, display formatting and logger selection
package commands

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/oniromante/oniromante/internal/ai"
	"github.com/oniromante/oniromante/internal/config"
	"github.com/oniromante/oniromante/internal/logger"
	"github.com/oniromante/oniromante/internal/store"
)

// loadConfig loads .env then the environment-driven configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load()
}

// cmdLogger returns the logger matching the global verbosity flags.
func cmdLogger() zerolog.Logger {
	if quiet {
		return logger.Discard()
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return logger.New(level)
}

// openStore opens the charm-backed record store. Callers must Close the
// returned backend.
func openStore(cfg *config.Config) (*store.Store, *store.CharmKV, error) {
	backend, err := store.OpenCharm(&store.CharmConfig{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store.New(backend), backend, nil
}

// newGenerator builds the AI client, failing fast when no key is set.
func newGenerator(cfg *config.Config) (ai.Generator, error) {
	gen, err := ai.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set; the interpretive features need it: %w", err)
	}
	return gen, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatDate renders an entry timestamp for display.
func formatDate(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	return raw
}
