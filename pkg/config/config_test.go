package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baldog/baldog-terminal/pkg/models"
)

const validYAML = `
storage:
  backend: "sqlite"
  path: "/tmp/baldog"
ui:
  validation_debounce_ms: 100
  show_featured: false
log:
  level: "debug"
  file: "debug.log"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != models.BackendSQLite {
		t.Errorf("storage.backend = %q, want %q", cfg.Storage.Backend, models.BackendSQLite)
	}
	if cfg.Storage.Path != "/tmp/baldog" {
		t.Errorf("storage.path = %q, want %q", cfg.Storage.Path, "/tmp/baldog")
	}
	if cfg.UI.ValidationDebounceMs != 100 {
		t.Errorf("ui.validation_debounce_ms = %d, want 100", cfg.UI.ValidationDebounceMs)
	}
	if cfg.UI.ShowFeatured {
		t.Error("ui.show_featured = true, want false")
	}
	if !cfg.UI.ShowOnboarding {
		t.Error("ui.show_onboarding should keep its default")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
}

// TestLoadMissingFileUsesDefaults verifies a fresh checkout runs without a config file.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := models.DefaultSettings()
	if cfg.Storage != def.Storage {
		t.Errorf("storage = %+v, want %+v", cfg.Storage, def.Storage)
	}
	if cfg.UI.ValidationDebounceMs != 75 {
		t.Errorf("ui.validation_debounce_ms = %d, want 75", cfg.UI.ValidationDebounceMs)
	}
}

// TestEnvOverride verifies that BALDOG_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("BALDOG_STORAGE_BACKEND", "memory")
	t.Setenv("BALDOG_DATA_DIR", "/srv/baldog")
	t.Setenv("BALDOG_VALIDATION_DEBOUNCE_MS", "50")
	t.Setenv("BALDOG_LOG_LEVEL", "warn")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != models.BackendMemory {
		t.Errorf("storage.backend = %q, want memory", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/srv/baldog" {
		t.Errorf("storage.path = %q, want /srv/baldog", cfg.Storage.Path)
	}
	if cfg.UI.ValidationDebounceMs != 50 {
		t.Errorf("ui.validation_debounce_ms = %d, want 50", cfg.UI.ValidationDebounceMs)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

// TestValidationErrors verifies that bad values are rejected.
func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "storage:\n  backend: redis\n"},
		{"empty path", "storage:\n  path: \"\"\n"},
		{"negative debounce", "ui:\n  validation_debounce_ms: -1\n"},
		{"bad log level", "log:\n  level: loud\n"},
		{"malformed yaml", "storage: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTemp(t, tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// TestWriteRoundTrip verifies init output can be loaded back.
func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := models.DefaultSettings()
	cfg.Storage.Backend = models.BackendSQLite

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Storage.Backend != models.BackendSQLite {
		t.Errorf("storage.backend = %q, want sqlite", loaded.Storage.Backend)
	}
}
