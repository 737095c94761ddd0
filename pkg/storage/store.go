// Package storage provides the string key-value store the app persists its
// preferences and exercise snapshot to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// Keys written by the application
const (
	KeyUserName           = "userName"
	KeySavedIntensity     = "savedIntensity"
	KeyOnboardingShown    = "firstTimeOnboardingShown"
	KeyExerciseSnapshot   = "exerciseSettingsSnapshot"
	KeyWarmupHistory      = "warmupHistory"
	sqliteDatabaseName    = "baldog.db"
	fileStoreSubdirectory = "store"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// Store is an async-style key-value store with last-writer-wins semantics
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open creates the backend selected in settings
func Open(settings models.StorageSettings) (Store, error) {
	switch settings.Backend {
	case models.BackendFile, "":
		return NewFileStore(filepath.Join(settings.Path, fileStoreSubdirectory))
	case models.BackendSQLite:
		return OpenSQLiteStore(filepath.Join(settings.Path, sqliteDatabaseName))
	case models.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (must be: file, sqlite, or memory)", settings.Backend)
	}
}

// ValidateKey rejects keys that could escape the store directory
func ValidateKey(key string) error {
	if key == "" {
		return errors.New("storage key cannot be empty")
	}

	invalidChars := []string{"/", "\\", "..", "~", "$", "`"}
	for _, char := range invalidChars {
		if strings.Contains(key, char) {
			return fmt.Errorf("storage key contains invalid character: %s", char)
		}
	}

	return nil
}
