package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()

	log, closer, err := New(dir, models.LogSettings{Level: "info", File: "baldog.log"})
	require.NoError(t, err)

	log.Info("settings saved", "exercise", 1)
	log.Debug("hidden")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(filepath.Join(dir, "baldog.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "settings saved")
	assert.Contains(t, string(content), "exercise=1")
	assert.NotContains(t, string(content), "hidden")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	log, closer, err := New(t.TempDir(), models.LogSettings{Level: "debug"})
	require.NoError(t, err)
	log.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("quiet")
	log.Warn("loud", "error", "disk full")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "disk full")
}
