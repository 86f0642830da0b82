package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context. The
// context must be current and its functions loaded (gl.Init) before
// NewRendererGL is called.
type RendererGL struct {
	win  core.Window
	w, h int
	info core.GPUInfo
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	r.info = core.GPUInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	if err := checkError("init"); err != nil {
		return err
	}

	// Passes enable what they need and restore it; the default is 2D-friendly.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	return nil
}

func (r *RendererGL) Shutdown() {
	r.w, r.h = 0, 0
}

func (r *RendererGL) Resize(w, h int) {
	r.w, r.h = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) GPUInfo() core.GPUInfo { return r.info }

// Clear wipes the whole framebuffer, whatever scissor a previous pass left.
func (r *RendererGL) Clear(c colors.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(r.w), int32(r.h))
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
