package main

import (
	"log/slog"
	"os"

	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/platform"
	"github.com/hubastard/canopy/engine/profiler"
)

const configFile = "canopy.toml"

func main() {
	cfg, err := core.LoadConfig(configFile)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	lvl, _ := cfg.SlogLevel() // validated by LoadConfig
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	if cfg.Profile.Enabled {
		profiler.Init(cfg.Profile.Capacity)
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(NewApp(cfg), cfg, newWindow, newRenderer); err != nil {
		slog.Error("canopy", "err", err)
		os.Exit(1)
	}
}
