package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, PacingVSync, cfg.Pacing.Mode)
	assert.False(t, cfg.Profile.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canopy.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Demo"
width = 1024
clear_color = "#000000"
log_level = "debug"

[pacing]
mode = "fixed"
tick_hz = 30

[profile]
enabled = true
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height, "unset keys keep their defaults")
	assert.Equal(t, colors.Black, cfg.ClearColor)
	assert.Equal(t, PacingFixed, cfg.Pacing.Mode)
	assert.Equal(t, 30, cfg.Pacing.TickHz)
	assert.True(t, cfg.Profile.Enabled)
	assert.Equal(t, 4096, cfg.Profile.Capacity)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestDecodeConfigRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("titel = \"typo\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDecodeConfigSyntaxError(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("width = = 3"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"old gl":         func(c *Config) { c.GL = GLConfig{Major: 2, Minor: 1} },
		"gl 3.1":         func(c *Config) { c.GL = GLConfig{Major: 3, Minor: 1} },
		"unknown pacing": func(c *Config) { c.Pacing.Mode = "sometimes" },
		"fixed no hz":    func(c *Config) { c.Pacing = PacingConfig{Mode: PacingFixed} },
		"bad level":      func(c *Config) { c.LogLevel = "loud" },
		"profile no cap": func(c *Config) { c.Profile = ProfileConfig{Enabled: true} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
