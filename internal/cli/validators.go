package cli

import (
	"fmt"
	"strings"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// ValidateOutputFormat rejects formats OutputResults cannot produce
func ValidateOutputFormat(format string) error {
	switch OutputFormat(strings.ToLower(format)) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateBackend checks a storage backend name given on the command line
func ValidateBackend(backend string) error {
	switch backend {
	case models.BackendFile, models.BackendSQLite, models.BackendMemory:
		return nil
	}
	return fmt.Errorf("invalid storage backend: %s (must be: file, sqlite, or memory)", backend)
}
