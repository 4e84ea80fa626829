// Package testsupport provides shared helpers for package tests: per-test
// configs seeded with temp directories and an opened production store with
// cleanup registered.
package testsupport

import (
	"path/filepath"
	"testing"

	"stagehand/internal/config"
	"stagehand/internal/store"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTheaterRoles switches the test config to the stage-play role catalog.
func WithTheaterRoles() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Production.TheaterRoles = true
	}
}

// WithWebhookSecret sets the shared webhook secret on the test config.
func WithWebhookSecret(secret string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Webhook.Secret = secret
	}
}

// MustOpenStore opens the production store for a test config and registers
// cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return st
}
