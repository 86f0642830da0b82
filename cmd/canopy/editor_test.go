package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/scene"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorDefaults(t *testing.T) {
	ed := NewEditor()
	assert.Equal(t, [3]float32{0, 0, -5}, ed.Translate())
	assert.Equal(t, [3]float32{0, 0, 0}, ed.Rotate())
	assert.Equal(t, [3]float32{1, 1, 1}, ed.Scale())
	assert.Equal(t, TabConsole, ed.ActiveTab())
}

func TestTabsAreExclusive(t *testing.T) {
	ed := NewEditor()
	for _, sel := range []Tab{TabContentBrowser, TabConsole, TabContentBrowser, TabContentBrowser} {
		ed.Select(sel)
		active := 0
		for _, tab := range tabs {
			if ed.ActiveTab() == tab {
				active++
			}
		}
		assert.Equal(t, 1, active)
		assert.Equal(t, sel, ed.ActiveTab())
	}
	assert.Equal(t, "Content Browser", TabContentBrowser.String())
}

func TestRotateZFieldEditsOnlyItsSlot(t *testing.T) {
	ed := NewEditor()
	before := ed.Transform()

	// The first field on screen is z.
	*ed.fieldSlot(scene.FieldRotate, 0) += 30

	after := ed.Transform()
	assert.Equal(t, mgl32.Vec3{0, 0, 30}, after.Rotate)
	assert.Equal(t, before.Translate, after.Translate)
	assert.Equal(t, before.Scale, after.Scale)
}

func TestDisplayAxesReverseStorageOrder(t *testing.T) {
	ed := NewEditor()
	for i := range displayAxes {
		*ed.fieldSlot(scene.FieldTranslate, i) = float32(i + 1)
	}
	assert.Equal(t, [3]float32{3, 2, 1}, ed.Translate())
}

func TestTransformFieldSpeeds(t *testing.T) {
	speeds := map[scene.Field]float32{}
	for _, row := range transformFields {
		speeds[row.field] = row.speed
	}
	assert.Equal(t, map[scene.Field]float32{
		scene.FieldTranslate: 0.05,
		scene.FieldRotate:    1.0,
		scene.FieldScale:     0.01,
	}, speeds)
}

func TestViewportAbsentBeforeFirstPass(t *testing.T) {
	_, ok := NewEditor().Viewport(600)
	assert.False(t, ok)
}

func TestViewportEndToEnd(t *testing.T) {
	ed := NewEditor()
	r := ed.layout(800, 600)
	ed.setCentral(r.Central, 1.0)

	assert.Equal(t, core.NewViewport(150, 0, 430, 495), ed.viewport)
	vp, ok := ed.Viewport(600)
	require.True(t, ok)
	assert.Equal(t, core.NewViewport(150, 105, 430, 495), vp)
}

func TestViewportHiDPI(t *testing.T) {
	ed := NewEditor()
	ed.setCentral(ed.layout(800, 600).Central, 2.0)
	vp, ok := ed.Viewport(1200)
	require.True(t, ok)
	assert.Equal(t, core.NewViewport(300, 210, 860, 990), vp)
}

func TestResizeBottom(t *testing.T) {
	ed := NewEditor()
	ed.resizeBottom(200, 600)
	assert.Equal(t, float32(200), ed.bottomHeight)
	assert.Equal(t, float32(400), ed.layout(800, 600).Central.H)

	ed.resizeBottom(20, 600)
	assert.Equal(t, float32(bottomMinHeight), ed.bottomHeight)

	ed.resizeBottom(900, 600)
	assert.Equal(t, float32(600), ed.bottomHeight)
}

// headlessUI drives Editor.Build through a real imgui context without GL.
type headlessUI struct {
	io      imgui.IO
	ed      *Editor
	display imgui.Vec2
}

func newHeadlessUI(t *testing.T) *headlessUI {
	t.Helper()
	ctx := imgui.CreateContext(nil)
	t.Cleanup(ctx.Destroy)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.Fonts().TextureDataRGBA32()
	return &headlessUI{io: io, ed: NewEditor(), display: imgui.Vec2{X: 800, Y: 600}}
}

// frame runs one UI pass with the left button at pos. within runs after
// Build, while the frame is still open.
func (h *headlessUI) frame(pos imgui.Vec2, down bool, within ...func()) {
	h.io.SetDisplaySize(h.display)
	h.io.SetDeltaTime(1.0 / 60)
	h.io.SetMousePosition(pos)
	h.io.SetMouseButtonDown(0, down)
	imgui.NewFrame()
	h.ed.Build(h.display, 1, 60)
	for _, f := range within {
		f()
	}
	imgui.Render()
}

// click presses and releases the left button at pos.
func (h *headlessUI) click(pos imgui.Vec2) {
	h.frame(pos, false)
	h.frame(pos, true)
	h.frame(pos, false)
}

// bottomContentTop is the y of the first item in the bottom panel.
func (h *headlessUI) bottomContentTop() float32 {
	return h.display.Y - h.ed.bottomHeight + imgui.CurrentStyle().WindowPadding().Y
}

var centralPoint = imgui.Vec2{X: 400, Y: 200}

func TestBuildPublishesViewport(t *testing.T) {
	h := newHeadlessUI(t)
	h.frame(centralPoint, false)

	vp, ok := h.ed.Viewport(600)
	require.True(t, ok)
	assert.Equal(t, core.NewViewport(150, 105, 430, 495), vp)
}

func TestBuildTabClickSelects(t *testing.T) {
	h := newHeadlessUI(t)
	var consoleWidth float32
	h.frame(centralPoint, false, func() {
		consoleWidth = imgui.CalcTextSize(TabConsole.String(), false, 0).X
	})

	style := imgui.CurrentStyle()
	tab := imgui.Vec2{
		X: leftPanelWidth + style.WindowPadding().X + consoleWidth + style.ItemSpacing().X + 10,
		Y: h.bottomContentTop() + splitterHeight + style.ItemSpacing().Y + 5,
	}
	h.click(tab)
	assert.Equal(t, TabContentBrowser, h.ed.ActiveTab())
}

func TestBuildSplitterResizesBottomPanel(t *testing.T) {
	h := newHeadlessUI(t)
	h.frame(centralPoint, false)

	grip := imgui.Vec2{X: 400, Y: h.bottomContentTop() + splitterHeight/2}
	h.frame(grip, false)
	h.frame(grip, true)

	// Up grows the panel, and the viewport follows in the same frame.
	h.frame(imgui.Vec2{X: grip.X, Y: grip.Y - 100}, true)
	assert.Equal(t, float32(205), h.ed.bottomHeight)
	vp, ok := h.ed.Viewport(600)
	require.True(t, ok)
	assert.Equal(t, core.NewViewport(150, 205, 430, 395), vp)

	// Below the starting point it stops at the minimum.
	h.frame(imgui.Vec2{X: grip.X, Y: grip.Y + 200}, true)
	assert.Equal(t, float32(bottomMinHeight), h.ed.bottomHeight)

	// Above the window it stops at the display height.
	h.frame(imgui.Vec2{X: grip.X, Y: grip.Y - 1000}, true)
	assert.Equal(t, float32(600), h.ed.bottomHeight)

	h.frame(centralPoint, false)
	h.frame(imgui.Vec2{X: centralPoint.X, Y: centralPoint.Y - 50}, true)
	assert.Equal(t, float32(600), h.ed.bottomHeight, "released splitter no longer drags")
}
