package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/scene3d"
	"github.com/hubastard/canopy/engine/gui"
	"github.com/hubastard/canopy/engine/profiler"
)

type App struct {
	editor *Editor
	gui    *gui.Context
	scene  *scene3d.Renderer

	profileOut string
	lastTitle  time.Time
}

func NewApp(cfg core.Config) *App {
	return &App{profileOut: cfg.Profile.Output}
}

func (a *App) OnStart(e *core.Engine) error {
	var err error
	a.scene, err = scene3d.New()
	if err != nil {
		return err
	}
	a.gui, err = gui.NewContext(e.Window.Clipboard(), time.Now())
	if err != nil {
		a.scene.Delete()
		return err
	}
	sx, sy := e.Window.ContentScale()
	a.gui.SetContentScale(max(sx, sy))
	a.editor = NewEditor()

	// Bottom-up render order: the GUI pass produces the viewport the scene needs.
	if err := e.PushLayer(&GUILayer{ctx: a.gui, editor: a.editor}); err != nil {
		return err
	}
	return e.PushLayer(&SceneLayer{renderer: a.scene, editor: a.editor})
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	_ = a.gui.HandleEvent(ev)

	key, ok := ev.(core.EventKey)
	if !ok || !key.Down || a.gui.WantsKeyboard() {
		return
	}
	switch {
	case key.Key == core.KeyEscape:
		slog.Info("escape pressed; closing")
		e.RequestClose()
	case key.Key == core.KeyP && e.Input.Mods()&core.ModCtrl != 0:
		a.dumpProfile()
	}
}

func (a *App) OnRender(e *core.Engine, f core.Frame) {
	if f.Now.Sub(a.lastTitle) < time.Second {
		return
	}
	a.lastTitle = f.Now
	e.Window.SetTitle(fmt.Sprintf("%s - %d FPS", e.Config.Title, a.gui.FPS()))
}

func (a *App) OnShutdown(e *core.Engine) {
	slog.Info("shutting down", "frames", e.FrameCount(), "uptime", e.Uptime().Round(time.Millisecond))
	if profiler.Enabled() {
		a.dumpProfile()
	}
}

func (a *App) dumpProfile() {
	if !profiler.Enabled() {
		slog.Info("profiler disabled; set profile.enabled in canopy.toml")
		return
	}
	path, err := profiler.Dump(a.profileOut)
	switch {
	case errors.Is(err, profiler.ErrNoEvents):
		slog.Warn("profile dump skipped", "err", err)
	case err != nil:
		slog.Error("profile dump", "err", err)
	default:
		slog.Info("profile written", "path", path)
	}
}
