package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera looks from Position towards Target. The projection
// follows the pixel size of the viewport it renders into.
type PerspectiveCamera struct {
	FovYDeg   float32
	Near, Far float32
	Position  mgl32.Vec3
	Target    mgl32.Vec3
	Up        mgl32.Vec3

	aspect float32
	vp     mgl32.Mat4
	dirty  bool
}

func NewPerspective(width, height int) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FovYDeg: 45,
		Near:    0.1,
		Far:     100,
		Target:  mgl32.Vec3{0, 0, -1},
		Up:      mgl32.Vec3{0, 1, 0},
	}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *PerspectiveCamera) SetViewportPixels(w, h int) {
	aspect := float32(1)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	if aspect != c.aspect {
		c.aspect = aspect
		c.dirty = true
	}
}

func (c *PerspectiveCamera) Aspect() float32 { return c.aspect }

func (c *PerspectiveCamera) LookAt(pos, target mgl32.Vec3) {
	c.Position, c.Target = pos, target
	c.dirty = true
}

func (c *PerspectiveCamera) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *PerspectiveCamera) Recalculate() {
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), c.aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Position, c.Target, c.Up)
	c.vp = proj.Mul4(view)
	c.dirty = false
}
