package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config for the engine run.
type Config struct {
	Title      string        `toml:"title"`
	Width      int           `toml:"width"`
	Height     int           `toml:"height"`
	ClearColor colors.Color  `toml:"clear_color"`
	LogLevel   string        `toml:"log_level"`
	Icon       string        `toml:"icon"` // optional PNG path for the window icon
	GL         GLConfig      `toml:"gl"`
	Pacing     PacingConfig  `toml:"pacing"`
	Profile    ProfileConfig `toml:"profile"`
}

type GLConfig struct {
	Major int `toml:"major"`
	Minor int `toml:"minor"`
}

type PacingConfig struct {
	Mode   PacingMode `toml:"mode"`
	TickHz int        `toml:"tick_hz"`
}

type ProfileConfig struct {
	Enabled  bool   `toml:"enabled"`
	Capacity int    `toml:"capacity"`
	Output   string `toml:"output"` // empty: temp dir
}

func DefaultConfig() Config {
	return Config{
		Title:      "Canopy",
		Width:      800,
		Height:     600,
		ClearColor: colors.Slate,
		LogLevel:   "info",
		GL:         GLConfig{Major: 3, Minor: 3},
		Pacing:     PacingConfig{Mode: PacingVSync, TickHz: 60},
		Profile:    ProfileConfig{Capacity: 4096},
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not an
// error: the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r over the defaults and validates the result.
// Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 2) {
		return fmt.Errorf("%w: OpenGL %d.%d is below the 3.2 core minimum", ErrInvalidConfig, c.GL.Major, c.GL.Minor)
	}
	switch c.Pacing.Mode {
	case PacingVSync, PacingUnlimited:
	case PacingFixed:
		if c.Pacing.TickHz <= 0 {
			return fmt.Errorf("%w: pacing.tick_hz must be positive, got %d", ErrInvalidConfig, c.Pacing.TickHz)
		}
	default:
		return fmt.Errorf("%w: unknown pacing.mode %q", ErrInvalidConfig, c.Pacing.Mode)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Profile.Enabled && c.Profile.Capacity <= 0 {
		return fmt.Errorf("%w: profile.capacity must be positive", ErrInvalidConfig)
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
