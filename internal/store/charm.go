// ABOUTME: Charm KV backend for durable local storage with optional sync
// ABOUTME: Wraps charm kv with automatic SSH key auth, mutex-guarded access
package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
)

// CharmConfig holds charm backend configuration.
type CharmConfig struct {
	Host     string
	DBName   string
	AutoSync bool
}

// DefaultCharmConfig returns the default charm backend configuration.
func DefaultCharmConfig() *CharmConfig {
	host := os.Getenv("CHARM_HOST")
	if host == "" {
		host = "cloud.charm.sh"
	}
	return &CharmConfig{
		Host:     host,
		DBName:   "oniromante",
		AutoSync: true,
	}
}

// CharmKV is a KV backed by charm's badger-based store.
type CharmKV struct {
	kv     *kv.KV
	config *CharmConfig
	mu     sync.Mutex
}

// OpenCharm opens the charm KV database with the given config.
func OpenCharm(cfg *CharmConfig) (*CharmKV, error) {
	// charm reads the host from the environment when opening
	os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := &CharmKV{
		kv:     db,
		config: cfg,
	}

	if cfg.AutoSync {
		_ = db.Sync()
	}

	return c, nil
}

// Close closes the underlying database.
func (c *CharmKV) Close() error {
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

func (c *CharmKV) syncIfEnabled() {
	if c.config.AutoSync {
		_ = c.kv.Sync()
	}
}

// Set stores a value under key.
func (c *CharmKV) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Get retrieves a value by key. Missing keys return (nil, nil).
func (c *CharmKV) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.kv.Get([]byte(key))
	if err != nil {
		// charm surfaces badger's not-found; the store treats absence
		// as the default-record path, so normalize it away here
		return nil, nil
	}
	return data, nil
}

// Delete removes a key.
func (c *CharmKV) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Keys lists all keys in the database.
func (c *CharmKV) Keys() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		result = append(result, string(key))
	}
	return result, nil
}

// Sync manually pushes and pulls against the charm server.
func (c *CharmKV) Sync() error {
	return c.kv.Sync()
}
