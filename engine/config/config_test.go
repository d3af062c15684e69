package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
seed: 99
window:
  scale: 2
audio:
  volume: 0.25
log:
  level: debug
  format: json
autopilot: hard
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 2.0, cfg.Window.Scale)
	assert.Equal(t, "Galactic Rebellion", cfg.Window.Title, "unset keys keep defaults")
	assert.True(t, cfg.Window.VSync)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "hard", cfg.Autopilot)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"scale", "window:\n  scale: 0\n"},
		{"volume", "audio:\n  volume: 1.5\n"},
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"autopilot", "autopilot: godlike\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "window: [1, 2\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "score", 40)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, float64(40), rec["score"])

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"}, &buf)
	assert.ErrorIs(t, err, ErrInvalid)
}
