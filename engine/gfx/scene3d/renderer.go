// Package scene3d draws the 3D content into a sub-rectangle of the framebuffer.
package scene3d

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/assets"
	"github.com/hubastard/canopy/engine/core"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/hubastard/canopy/engine/scene"
)

// Renderer draws a vertex-colored cube. All drawing is confined to the
// viewport passed to Render; GL state it touches is restored afterwards.
type Renderer struct {
	program uint32
	uMVP    int32
	vao     uint32
	vbo     uint32
	ebo     uint32
	count   int32

	camera *scene.PerspectiveCamera
	empty  bool
}

func New() (*Renderer, error) {
	vs, fs, err := assets.LoadProgramSources("cube")
	if err != nil {
		return nil, err
	}
	r := &Renderer{camera: scene.NewPerspective(1, 1)}
	r.program, err = glbackend.NewProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}
	r.uMVP = glbackend.Uniform(r.program, "uMVP")

	mesh := Cube()
	r.count = int32(len(mesh.Indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec3 aColor;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, unsafe.Pointer(uintptr(colorOffset)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return r, nil
}

// Render draws the cube with model matrix tr.Model() into vp, given in
// framebuffer pixels with a bottom-left origin. Empty viewports draw nothing.
func (r *Renderer) Render(vp core.Viewport, tr scene.Transform) {
	if !r.visible(vp) {
		return
	}

	var prevViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])
	depthWas := gl.IsEnabled(gl.DEPTH_TEST)
	scissorWas := gl.IsEnabled(gl.SCISSOR_TEST)

	x, y, w, h := int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height)
	gl.Viewport(x, y, w, h)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(x, y, w, h)
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	r.camera.SetViewportPixels(vp.Width, vp.Height)
	mvp := r.camera.VP().Mul4(tr.Model())

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.count, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	setEnabled(gl.DEPTH_TEST, depthWas)
	setEnabled(gl.SCISSOR_TEST, scissorWas)
	gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
}

// visible reports whether vp has an area, logging once each time the
// viewport collapses.
func (r *Renderer) visible(vp core.Viewport) bool {
	if vp.Empty() {
		if !r.empty {
			slog.Debug("scene viewport empty; skipping 3D pass", "viewport", vp)
		}
		r.empty = true
		return false
	}
	r.empty = false
	return true
}

func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	*r = Renderer{camera: r.camera}
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
