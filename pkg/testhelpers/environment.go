package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/baldog/baldog-terminal/pkg/config"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// TestEnvironment provides a temp working directory with a data dir
type TestEnvironment struct {
	t          *testing.T
	TempDir    string
	OriginalWd string
	cleanup    []func()
}

// NewTestEnvironment creates a new test environment with a temporary directory
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	env := &TestEnvironment{
		t:          t,
		TempDir:    t.TempDir(),
		OriginalWd: originalWd,
	}

	env.cleanup = append(env.cleanup, func() {
		os.Chdir(originalWd)
	})
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup performs all cleanup operations
func (e *TestEnvironment) Cleanup() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
	e.cleanup = nil
}

// ChangeToTempDir changes the working directory to the temp directory
func (e *TestEnvironment) ChangeToTempDir() {
	if err := os.Chdir(e.TempDir); err != nil {
		e.t.Fatalf("Failed to change to temp dir: %v", err)
	}
}

// DataDir is the .baldog directory inside the temp dir
func (e *TestEnvironment) DataDir() string {
	return filepath.Join(e.TempDir, models.DefaultDataDir)
}

// InitDataDir writes a config file using the given backend
func (e *TestEnvironment) InitDataDir(backend string) *models.Settings {
	e.t.Helper()

	cfg := models.DefaultSettings()
	cfg.Storage.Backend = backend
	cfg.Storage.Path = e.DataDir()
	cfg.Log.File = ""

	if err := config.Write(config.Path(e.DataDir()), cfg); err != nil {
		e.t.Fatalf("Failed to write config: %v", err)
	}
	return cfg
}
