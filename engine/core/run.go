package core

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/canopy/engine/profiler"
)

// State of the engine. Resources are acquired once, on the transition to
// StateRunning; there is no way back.
type State int

const (
	StateUninitialized State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	// Window and Renderer are set together by the transition to StateRunning.
	Window   Window
	Renderer Renderer
	Input    *Input
	Layers   LayerStack
	Config   Config

	app   App
	state State
	pacer *Pacer
	now   func() time.Time
	start time.Time
	last  time.Time
	frame uint64
	exit  bool
}

func (e *Engine) State() State          { return e.state }
func (e *Engine) Uptime() time.Duration { return e.now().Sub(e.start) }
func (e *Engine) FrameCount() uint64    { return e.frame }
func (e *Engine) ExitRequested() bool   { return e.exit }
func (e *Engine) Pacing() PacingMode    { return e.pacer.Mode() }
func (e *Engine) RequestClose()         { e.exit = true }

// PushLayer attaches l and puts it on top of the stack. Layers render
// bottom-up and see events top-down.
func (e *Engine) PushLayer(l Layer) error {
	if err := l.OnAttach(e); err != nil {
		return err
	}
	e.Layers.Push(l)
	return nil
}

// Run wires the platform window + renderer and executes the main loop.
// Initialization failures are returned; nothing is retried.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	e := &Engine{
		Input:  NewInput(),
		Config: cfg,
		app:    app,
		now:    time.Now,
	}
	if err := e.resume(newWindow, newRenderer); err != nil {
		e.shutdown()
		return err
	}
	defer e.shutdown()

	e.loop()
	return nil
}

// resume performs the Uninitialized -> Running transition.
func (e *Engine) resume(newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	if e.state != StateUninitialized {
		return fmt.Errorf("engine: resume in state %s", e.state)
	}

	win, err := newWindow(e.Config)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	e.Window = win

	rend, err := newRenderer(win, e.Config)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	e.Renderer = rend

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	e.pacer = NewPacer(e.Config.Pacing)
	win.SetSwapInterval(e.pacer.SwapInterval())
	win.SetEventCallback(e.dispatch)

	e.start = e.now()
	e.last = e.start
	e.state = StateRunning

	gpu := rend.GPUInfo()
	slog.Info("engine running",
		"framebuffer", fmt.Sprintf("%dx%d", w, h),
		"pacing", e.pacer.Mode(),
		"gpu", gpu.Renderer,
		"gl", gpu.Version,
	)

	if err := e.app.OnStart(e); err != nil {
		return fmt.Errorf("start app: %w", err)
	}
	return nil
}

func (e *Engine) loop() {
	for !e.exit {
		due, wait := e.pacer.Next(e.now())
		if !due {
			e.Window.WaitEventsTimeout(wait)
			continue
		}

		// Poll OS events (platform will emit via callbacks)
		e.Window.PollEvents()
		if e.exit {
			break
		}
		e.dispatch(EventRedrawRequested{})
	}
}

// dispatch routes one platform event. The app (and through it the GUI input
// bridge) always sees the event first.
func (e *Engine) dispatch(ev Event) {
	if e.state != StateRunning {
		return
	}
	e.Input.Handle(ev)
	e.app.OnEvent(e, ev)
	e.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(e, ev) })

	switch v := ev.(type) {
	case EventCloseRequested:
		slog.Info("close requested; stopping")
		e.exit = true
	case EventRedrawRequested:
		if !e.exit {
			e.renderFrame()
		}
	case EventResize:
		if v.W < 1 || v.H < 1 {
			return
		}
		e.Renderer.Resize(v.W, v.H)
	}
}

func (e *Engine) renderFrame() {
	end := profiler.Start("frame")
	defer end()

	now := e.now()
	f := Frame{Index: e.frame, Now: now, Delta: now.Sub(e.last)}
	e.last = now

	clearEnd := profiler.Start("frame.clear")
	e.Renderer.Clear(e.Config.ClearColor)
	clearEnd()

	e.Layers.ForEach(func(l Layer) { l.OnRender(e, f) })
	e.app.OnRender(e, f)
	e.Input.EndFrame()

	presentEnd := profiler.Start("frame.present")
	e.Window.SwapBuffers()
	presentEnd()

	e.frame++
}

// shutdown releases everything acquired by resume, newest first.
func (e *Engine) shutdown() {
	if e.state == StateRunning {
		e.app.OnShutdown(e)
	}
	for {
		l, ok := e.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(e)
	}
	if e.Renderer != nil {
		e.Renderer.Shutdown()
	}
	if e.Window != nil {
		e.Window.Destroy()
	}
	slog.Info("engine exit", "frames", e.frame)
}
