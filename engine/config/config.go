// Package config loads the runtime settings of the game binaries. Gameplay tuning is
// compiled in and not configurable here.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Seed      int64        `yaml:"seed"`
	Window    WindowConfig `yaml:"window"`
	Audio     AudioConfig  `yaml:"audio"`
	Replay    ReplayConfig `yaml:"replay"`
	Log       LogConfig    `yaml:"log"`
	Autopilot string       `yaml:"autopilot"` // "", easy, medium or hard
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
	VSync bool    `yaml:"vsync"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // master gain in [0, 1]
}

type ReplayConfig struct {
	Record string `yaml:"record"` // output path; empty disables recording
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "Galactic Rebellion", Scale: 1, VSync: true},
		Audio:  AudioConfig{Enabled: true, Volume: 1},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load decodes a YAML file over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c Config) Validate() error {
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalid, c.Window.Scale)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0,1], got %v", ErrInvalid, c.Audio.Volume)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Autopilot {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: autopilot %q", ErrInvalid, c.Autopilot)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
	return lvl, nil
}

// NewLogger builds a slog logger writing to out at the configured level and format
func NewLogger(lc LogConfig, out io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch lc.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(out, opts)), nil
	}
	return nil, fmt.Errorf("%w: log.format %q", ErrInvalid, lc.Format)
}
