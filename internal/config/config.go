// Package config loads salidas settings from config.yaml in the data directory,
// then applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/salidas/internal/outing"
	"github.com/faizmokh/salidas/internal/store"
)

// Environment variables that override file values when non-empty.
const (
	EnvStore    = "SALIDAS_STORE"
	EnvLogLevel = "SALIDAS_LOG_LEVEL"
)

// Config holds all salidas configuration.
type Config struct {
	// Store selects the key-value backend: file or sqlite.
	Store string `yaml:"store"`

	// LogLevel is the minimum level written to salidas.log.
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// StorageKey is the key the outing list is stored under.
	StorageKey string `yaml:"storage_key"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Store:      store.BackendFile,
		LogLevel:   "info",
		StorageKey: outing.StorageKey,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Store = getEnv(EnvStore, cfg.Store)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and log levels.
func (c Config) Validate() error {
	switch c.Store {
	case store.BackendFile, store.BackendSQLite:
	default:
		return fmt.Errorf("invalid store %q (expected %s|%s)", c.Store, store.BackendFile, store.BackendSQLite)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug|info|warn|error)", c.LogLevel)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("storage_key must not be empty")
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
