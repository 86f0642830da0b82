package platform

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	clip Clipboard
	onEv func(core.Event)
}

// NewGLFWWindow opens the window, makes its GL context current and loads the
// GL function pointers. Must be called on the main thread before any GL call.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// Core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, clip: Clipboard{w: win}}
	if cfg.Icon != "" {
		gw.setIcon(cfg.Icon)
	}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetRefreshCallback(func(*glfw.Window) { gw.emit(core.EventRedrawRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		gw.emit(core.EventContentScale{X: x, Y: y})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, Mods: translateMods(mods)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.emit(core.EventChar{Char: r})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

// setIcon is best effort: a broken icon file is logged and ignored.
func (g *GLFWWindow) setIcon(path string) {
	img, err := assets.LoadImage(path)
	if err != nil {
		slog.Warn("window icon", "err", err)
		return
	}
	g.w.SetIcon([]image.Image{img})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) SetSwapInterval(n int)                { glfw.SwapInterval(n) }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) Size() (int, int)                     { return g.w.GetSize() }
func (g *GLFWWindow) ContentScale() (float32, float32)     { return g.w.GetContentScale() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) Clipboard() core.Clipboard            { return g.clip }

func (g *GLFWWindow) WaitEventsTimeout(d time.Duration) {
	glfw.WaitEventsTimeout(d.Seconds())
}

// Destroy closes the window and terminates GLFW; the GL context dies with it.
func (g *GLFWWindow) Destroy() {
	if g.w == nil {
		return
	}
	g.w.Destroy()
	g.w = nil
	glfw.Terminate()
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyKeypadEnter,
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeyA:            core.KeyA,
	glfw.KeyC:            core.KeyC,
	glfw.KeyP:            core.KeyP,
	glfw.KeyV:            core.KeyV,
	glfw.KeyX:            core.KeyX,
	glfw.KeyY:            core.KeyY,
	glfw.KeyZ:            core.KeyZ,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyRightControl: core.KeyRightCtrl,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
}

func translateKey(k glfw.Key) core.Key {
	if ck, ok := keyTable[k]; ok {
		return ck
	}
	return core.KeyUnknown
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
