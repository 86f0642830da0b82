// Package gui bridges the engine to Dear ImGui: it feeds platform input into
// an imgui context, runs a UI closure once per frame and paints the result
// with OpenGL.
package gui

import (
	"fmt"
	"time"

	"github.com/hubastard/canopy/engine/core"
	"github.com/inkyblackness/imgui-go/v4"
)

// FrameInput is what a GUI pass needs to know about the window. Input, when
// set, supplies the mouse and typed text; its scroll and chars are taken.
type FrameInput struct {
	Now             time.Time
	WindowSize      [2]int // points
	FramebufferSize [2]int // pixels
	Input           *core.Input
}

// FrameOutput is the tessellated result of one GUI pass.
type FrameOutput struct {
	DrawData        imgui.DrawData
	DisplaySize     imgui.Vec2
	FramebufferSize [2]int
	PixelsPerPoint  float32
}

// Context owns the imgui context, its IO and the painter drawing it.
type Context struct {
	imgui   *imgui.Context
	io      imgui.IO
	painter *Painter
	timer   *FrameTimer
	ppp     float32

	contentScale float32 // reported by the platform
	uiScale      float32 // applied to fonts and style sizes
}

// NewContext creates the imgui context and its GL resources. A GL context
// must be current.
func NewContext(clip core.Clipboard, now time.Time) (*Context, error) {
	c := newContext(clip, now)
	p, err := NewPainter(c.io)
	if err != nil {
		c.Destroy()
		return nil, fmt.Errorf("gui painter: %w", err)
	}
	c.painter = p
	return c, nil
}

// newContext sets up imgui without GL. Run works; Paint needs a painter.
func newContext(clip core.Clipboard, now time.Time) *Context {
	ictx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	if clip != nil {
		io.SetClipboard(clip)
	}
	mapKeys(io)

	imgui.StyleColorsDark()
	imgui.CurrentStyle().SetColor(imgui.StyleColorWindowBg, imgui.Vec4{X: 0.11, Y: 0.11, Z: 0.12, W: 1})

	return &Context{
		imgui: ictx,
		io:    io,
		timer: NewFrameTimer(now),
		ppp:   1,

		contentScale: 1,
		uiScale:      1,
	}
}

// Run executes one GUI pass: build declares the widgets, then the frame is
// tessellated. The returned draw data is valid until the next Run.
func (c *Context) Run(in FrameInput, build func()) FrameOutput {
	dt := c.timer.Tick(in.Now)
	secs := float32(dt.Seconds())
	if secs <= 0 {
		// imgui rejects a zero delta.
		secs = 1.0 / 60
	}

	display := imgui.Vec2{X: float32(in.WindowSize[0]), Y: float32(in.WindowSize[1])}
	c.io.SetDisplaySize(display)
	c.io.SetDeltaTime(secs)
	c.ppp = PixelsPerPoint(in.WindowSize[0], in.FramebufferSize[0])
	c.applyScale(UIScale(c.contentScale, c.ppp))
	if in.Input != nil {
		c.feed(in.Input)
	}

	imgui.NewFrame()
	build()
	imgui.Render()

	return FrameOutput{
		DrawData:        imgui.RenderedDrawData(),
		DisplaySize:     display,
		FramebufferSize: in.FramebufferSize,
		PixelsPerPoint:  c.ppp,
	}
}

// SetContentScale records the monitor scale the platform reports. It takes
// effect on the next Run.
func (c *Context) SetContentScale(s float32) {
	if s > 0 {
		c.contentScale = s
	}
}

// UIScale is the factor UI sizes need on top of the points to pixels
// mapping. Platforms that already scale points (pixelsPerPoint > 1) need
// less of it.
func UIScale(contentScale, pixelsPerPoint float32) float32 {
	if contentScale <= 0 {
		return 1
	}
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	return contentScale / pixelsPerPoint
}

// applyScale sizes fonts and style for s. ScaleAllSizes multiplies the
// current style, so only the ratio to the applied scale is passed.
func (c *Context) applyScale(s float32) {
	if s == c.uiScale {
		return
	}
	imgui.CurrentStyle().ScaleAllSizes(s / c.uiScale)
	c.io.SetFontGlobalScale(s)
	c.uiScale = s
}

func (c *Context) feed(in *core.Input) {
	x, y := in.Mouse()
	c.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for b := core.MouseLeft; b < core.MouseButtonCount; b++ {
		if i, ok := mouseButton(b); ok {
			c.io.SetMouseButtonDown(i, in.IsButtonDown(b))
		}
	}
	if sx, sy := in.TakeScroll(); sx != 0 || sy != 0 {
		c.io.AddMouseWheelDelta(float32(sx), float32(sy))
	}
	if s := in.TakeChars(); s != "" {
		c.io.AddInputCharacters(s)
	}
}

// Paint composites a pass over whatever is in the framebuffer.
func (c *Context) Paint(out FrameOutput) {
	c.painter.Render(out.DisplaySize, out.FramebufferSize, out.DrawData)
}

func (c *Context) FPS() int                { return c.timer.FPS() }
func (c *Context) PixelsPerPoint() float32 { return c.ppp }

// Destroy releases the painter before the imgui context it draws.
func (c *Context) Destroy() {
	if c.painter != nil {
		c.painter.Dispose()
		c.painter = nil
	}
	if c.imgui != nil {
		c.imgui.Destroy()
		c.imgui = nil
	}
}
