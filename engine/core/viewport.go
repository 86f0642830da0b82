package core

import "fmt"

// Viewport is a pixel rectangle of the back buffer. Whether Y counts from the
// top (UI space) or the bottom (GL space) depends on who produced it.
type Viewport struct {
	X, Y          int
	Width, Height int
}

func NewViewport(x, y, w, h int) Viewport {
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

// FlipY converts between top-left and bottom-left origin for a target of
// height h. Applying it twice with the same h yields the original rectangle.
func (v Viewport) FlipY(h int) Viewport {
	return Viewport{X: v.X, Y: h - v.Y - v.Height, Width: v.Width, Height: v.Height}
}

// Empty reports whether nothing can be drawn inside v.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

func (v Viewport) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", v.X, v.Y, v.Width, v.Height)
}
