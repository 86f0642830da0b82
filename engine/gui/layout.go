package gui

import "github.com/hubastard/canopy/engine/core"

// Rect is an axis-aligned rectangle in points, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Max() (x, y float32) { return r.X + r.W, r.Y + r.H }

// DockLayout splits the display into side panels around a central area.
// Panels are placed left, then bottom, then right: the left panel takes the
// full height, the bottom panel the width right of it, and the right panel
// the height above the bottom panel.
type DockLayout struct {
	LeftWidth    float32
	BottomHeight float32
	RightWidth   float32
}

// Regions is the result of a DockLayout split.
type Regions struct {
	Left, Bottom, Right, Central Rect
}

// Split lays the panels out over a display of w x h points. Sizes are not
// clamped; a central area squeezed out by the panels comes back with a
// negative size.
func (d DockLayout) Split(w, h float32) Regions {
	l, b, r := d.LeftWidth, d.BottomHeight, d.RightWidth
	return Regions{
		Left:    Rect{X: 0, Y: 0, W: l, H: h},
		Bottom:  Rect{X: l, Y: h - b, W: w - l, H: b},
		Right:   Rect{X: w - r, Y: 0, W: r, H: h - b},
		Central: Rect{X: l, Y: 0, W: w - l - r, H: h - b},
	}
}

// ViewportFromRect converts a rectangle in points to whole pixels, top-left
// origin. Components are truncated; negative sizes become zero.
func ViewportFromRect(r Rect, pixelsPerPoint float32) core.Viewport {
	vp := core.NewViewport(
		int(r.X*pixelsPerPoint),
		int(r.Y*pixelsPerPoint),
		int(r.W*pixelsPerPoint),
		int(r.H*pixelsPerPoint),
	)
	vp.Width = max(vp.Width, 0)
	vp.Height = max(vp.Height, 0)
	return vp
}

// PixelsPerPoint is the framebuffer to window size ratio; 1 when the window
// has no size yet.
func PixelsPerPoint(windowWidth, framebufferWidth int) float32 {
	if windowWidth <= 0 || framebufferWidth <= 0 {
		return 1
	}
	return float32(framebufferWidth) / float32(windowWidth)
}
