package core

import (
	"time"

	"github.com/hubastard/canopy/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine) error     // called once, after window/renderer init
	OnRender(e *Engine, f Frame) // called after the layers rendered, before present
	OnEvent(e *Engine, ev Event) // every platform event, before the layers see it
	OnShutdown(e *Engine)        // before layers detach
}

// Frame describes the frame being produced.
type Frame struct {
	Index uint64
	Now   time.Time
	Delta time.Duration
}

// Window abstraction.
type Window interface {
	PollEvents()
	WaitEventsTimeout(d time.Duration)
	SwapBuffers()
	SetSwapInterval(n int)
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	Size() (int, int)
	ContentScale() (float32, float32)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Clipboard() Clipboard
	Destroy()
}

// Clipboard is the system clipboard as seen by the GUI.
type Clipboard interface {
	Text() (string, error)
	SetText(text string)
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	GPUInfo() GPUInfo
	Shutdown()
}

type GPUInfo struct {
	Vendor   string
	Renderer string
	Version  string
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventRedrawRequested struct{}

func (EventRedrawRequested) isEvent() {}

// EventResize carries the new framebuffer size in pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventChar struct{ Char rune }

func (EventChar) isEvent() {}

// EventMouseMove is in window coordinates (points).
type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type EventContentScale struct{ X, Y float32 }

func (EventContentScale) isEvent() {}

// Key enum: the subset the GUI key map and the app use.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyKeypadEnter
	KeyEscape
	KeyA
	KeyC
	KeyP
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	KeyCount
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	MouseButtonCount
)
