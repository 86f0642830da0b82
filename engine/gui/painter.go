package gui

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/canopy/engine/assets"
	glbackend "github.com/hubastard/canopy/engine/gfx/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// Painter draws imgui draw data with OpenGL 3.3 core. It owns the font
// atlas texture, the program and the streaming buffers.
type Painter struct {
	io imgui.IO

	program uint32
	uTex    int32
	uProj   int32
	vao     uint32
	vbo     uint32
	ebo     uint32
	font    uint32
}

func NewPainter(io imgui.IO) (*Painter, error) {
	vs, fs, err := assets.LoadProgramSources("imgui")
	if err != nil {
		return nil, err
	}
	p := &Painter{io: io}
	p.program, err = glbackend.NewProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("imgui program: %w", err)
	}
	p.uTex = glbackend.Uniform(p.program, "uTexture")
	p.uProj = glbackend.Uniform(p.program, "uProj")

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.GenBuffers(1, &p.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	stride, posOff, uvOff, colOff := imgui.VertexBufferLayout()
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, int32(stride), unsafe.Pointer(uintptr(posOff)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, int32(stride), unsafe.Pointer(uintptr(uvOff)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.UNSIGNED_BYTE, true, int32(stride), unsafe.Pointer(uintptr(colOff)))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	p.createFontTexture()
	return p, nil
}

func (p *Painter) createFontTexture() {
	img := p.io.Fonts().TextureDataRGBA32()

	var last int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &last)
	gl.GenTextures(1, &p.font)
	gl.BindTexture(gl.TEXTURE_2D, p.font)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, img.Pixels)
	gl.BindTexture(gl.TEXTURE_2D, uint32(last))

	p.io.Fonts().SetTextureID(imgui.TextureID(p.font))
}

// Render composites dd over the framebuffer. displaySize is in points,
// fbSize in pixels. GL state the pass changes is restored afterwards.
func (p *Painter) Render(displaySize imgui.Vec2, fbSize [2]int, dd imgui.DrawData) {
	fbW, fbH := float32(fbSize[0]), float32(fbSize[1])
	if fbW <= 0 || fbH <= 0 || displaySize.X <= 0 || displaySize.Y <= 0 {
		return
	}
	dd.ScaleClipRects(imgui.Vec2{X: fbW / displaySize.X, Y: fbH / displaySize.Y})

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	proj := orthoProjection(displaySize.X, displaySize.Y)
	gl.UseProgram(p.program)
	gl.Uniform1i(p.uTex, 0)
	gl.UniformMatrix4fv(p.uProj, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	indexSize := imgui.IndexBufferLayout()
	indexType := uint32(gl.UNSIGNED_SHORT)
	if indexSize == 4 {
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range dd.CommandLists() {
		vb, vbSize := list.VertexBuffer()
		gl.BufferData(gl.ARRAY_BUFFER, vbSize, vb, gl.STREAM_DRAW)
		ib, ibSize := list.IndexBuffer()
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, ibSize, ib, gl.STREAM_DRAW)

		offset := 0
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				x, y, w, h := scissorRect(cmd.ClipRect(), fbH)
				gl.Scissor(x, y, w, h)
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, unsafe.Pointer(uintptr(offset)))
			}
			offset += cmd.ElementCount() * indexSize
		}
	}
	gl.BindVertexArray(0)
}

func (p *Painter) Dispose() {
	if p.font != 0 {
		gl.DeleteTextures(1, &p.font)
		p.io.Fonts().SetTextureID(0)
		p.font = 0
	}
	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
	}
	p.ebo, p.vbo, p.vao, p.program = 0, 0, 0, 0
}

// orthoProjection maps points (top-left origin, y down) to clip space.
func orthoProjection(w, h float32) mgl32.Mat4 {
	return mgl32.Ortho(0, w, h, 0, -1, 1)
}

// scissorRect converts an imgui clip rect (x1, y1, x2, y2 in framebuffer
// pixels, top-left origin) to glScissor arguments.
func scissorRect(clip imgui.Vec4, fbH float32) (x, y, w, h int32) {
	return int32(clip.X), int32(fbH - clip.W), int32(clip.Z - clip.X), int32(clip.W - clip.Y)
}

type glState struct {
	program, texture, activeTexture int32
	arrayBuffer, vertexArray        int32
	viewport, scissor               [4]int32
	blend, cull, depth, scissorTest bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &s.activeTexture)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vertexArray)
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.scissorTest = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.ActiveTexture(uint32(s.activeTexture))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BindVertexArray(uint32(s.vertexArray))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	toggle(gl.BLEND, s.blend)
	toggle(gl.CULL_FACE, s.cull)
	toggle(gl.DEPTH_TEST, s.depth)
	toggle(gl.SCISSOR_TEST, s.scissorTest)
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
}

func toggle(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
