package main

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gfx/scene3d"
	"github.com/hubastard/canopy/engine/gui"
	"github.com/hubastard/canopy/engine/profiler"
)

// GUILayer runs the editor UI and composites it. It owns the GUI context.
type GUILayer struct {
	ctx    *gui.Context
	editor *Editor
}

func (l *GUILayer) OnAttach(*core.Engine) error { return nil }

func (l *GUILayer) OnDetach(*core.Engine) {
	l.ctx.Destroy()
}

func (l *GUILayer) OnRender(e *core.Engine, f core.Frame) {
	end := profiler.Start("gui")
	defer end()

	ww, wh := e.Window.Size()
	fw, fh := e.Window.FramebufferSize()
	in := gui.FrameInput{
		Now:             f.Now,
		WindowSize:      [2]int{ww, wh},
		FramebufferSize: [2]int{fw, fh},
		Input:           e.Input,
	}

	runEnd := profiler.Start("gui.run")
	out := l.ctx.Run(in, func() {
		l.editor.Build(vec2(in.WindowSize), l.ctx.PixelsPerPoint(), l.ctx.FPS())
	})
	runEnd()

	paintEnd := profiler.Start("gui.paint")
	l.ctx.Paint(out)
	paintEnd()
}

// The input bridge is fed by the app before any layer sees an event.
func (l *GUILayer) OnEvent(*core.Engine, core.Event) bool { return false }

// SceneLayer draws the 3D scene into the viewport left by the GUI.
type SceneLayer struct {
	renderer *scene3d.Renderer
	editor   *Editor
}

func (l *SceneLayer) OnAttach(*core.Engine) error { return nil }

func (l *SceneLayer) OnDetach(*core.Engine) {
	l.renderer.Delete()
}

func (l *SceneLayer) OnRender(e *core.Engine, _ core.Frame) {
	_, fh := e.Window.FramebufferSize()
	vp, ok := l.editor.Viewport(fh)
	if !ok {
		panic("scene: viewport not present; the GUI layer must render before the scene layer")
	}

	end := profiler.Start("scene")
	l.renderer.Render(vp, l.editor.Transform())
	end()
}

func (l *SceneLayer) OnEvent(*core.Engine, core.Event) bool { return false }
