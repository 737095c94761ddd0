package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/baldog/baldog-terminal/pkg/logging"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// FileName is the config file inside the data directory
const FileName = "config.yaml"

// Path returns the config file location for a data directory
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. A missing file is not an error.
// Env vars use the prefix BALDOG_:
//
//	BALDOG_DATA_DIR, BALDOG_STORAGE_BACKEND,
//	BALDOG_VALIDATION_DEBOUNCE_MS, BALDOG_LOG_LEVEL, BALDOG_LOG_FILE
func Load(path string) (*models.Settings, error) {
	cfg := models.DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *models.Settings) {
	if v := os.Getenv("BALDOG_DATA_DIR"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("BALDOG_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("BALDOG_VALIDATION_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.UI.ValidationDebounceMs = ms
		}
	}
	if v := os.Getenv("BALDOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BALDOG_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// Validate checks the settings for values the app cannot run with
func Validate(c *models.Settings) error {
	switch c.Storage.Backend {
	case models.BackendFile, models.BackendSQLite, models.BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be file, sqlite, or memory, got %q", c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}
	if c.UI.ValidationDebounceMs < 0 {
		return errors.New("ui.validation_debounce_ms cannot be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Write persists the settings as YAML
func Write(path string, cfg *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
