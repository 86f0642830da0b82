package main

import (
	"fmt"

	"github.com/hubastard/canopy/engine/colors"
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/gui"
	"github.com/hubastard/canopy/engine/scene"
	"github.com/hubastard/canopy/engine/scratch"
	"github.com/inkyblackness/imgui-go/v4"
)

const (
	leftPanelWidth  = 150
	rightPanelWidth = 220
	bottomMinHeight = 105
	splitterHeight  = 4
)

// Tab of the bottom panel. Exactly one is active at a time.
type Tab int

const (
	TabConsole Tab = iota
	TabContentBrowser
)

func (t Tab) String() string {
	switch t {
	case TabConsole:
		return "Console"
	case TabContentBrowser:
		return "Content Browser"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

var tabs = [...]Tab{TabConsole, TabContentBrowser}

var consoleLines = [...]string{
	"Lorem ipsum dolor sit amet consectetur adipisicing elit.",
	"Perspiciatis maxime nostrum fuga dolorem vel ipsa ut debitis",
	"est delectus asperiores enim earum dignissimos dicta distinctio",
	"ratione, culpa nesciunt consequatur quasi.",
}

// transformFields are the property rows, top to bottom, with their drag speed.
var transformFields = [...]struct {
	field scene.Field
	speed float32
}{
	{scene.FieldTranslate, 0.05},
	{scene.FieldRotate, 1.0},
	{scene.FieldScale, 0.01},
}

// displayAxes maps the on-screen position of a drag field to the vector
// component it edits. Fields show z, y, x left to right; vectors store x, y, z.
var displayAxes = [3]int{2, 1, 0}

var axisNames = [3]string{"x", "y", "z"}

// Editor declares the demo UI each frame and owns the state it edits.
type Editor struct {
	transform    scene.Transform
	hierarchy    scene.Node
	tab          Tab
	bottomHeight float32
	dragFrom     float32 // bottomHeight when the splitter drag began
	labels       *scratch.Buffer

	viewport    core.Viewport // top-left origin, pixels
	hasViewport bool
}

func NewEditor() *Editor {
	return &Editor{
		transform:    scene.DefaultTransform(),
		hierarchy:    scene.DefaultHierarchy(),
		tab:          TabConsole,
		bottomHeight: bottomMinHeight,
		labels:       scratch.New(256),
	}
}

func (ed *Editor) Transform() scene.Transform { return ed.transform }
func (ed *Editor) Translate() [3]float32      { return ed.transform.Translate }
func (ed *Editor) Rotate() [3]float32         { return ed.transform.Rotate }
func (ed *Editor) Scale() [3]float32          { return ed.transform.Scale }
func (ed *Editor) ActiveTab() Tab             { return ed.tab }

// Select makes t the active bottom tab, deactivating the other.
func (ed *Editor) Select(t Tab) { ed.tab = t }

// Viewport is the central area in framebuffer pixels with a bottom-left
// origin, ready for GL. It is absent until one UI pass has run.
func (ed *Editor) Viewport(framebufferHeight int) (core.Viewport, bool) {
	if !ed.hasViewport {
		return core.Viewport{}, false
	}
	return ed.viewport.FlipY(framebufferHeight), true
}

func (ed *Editor) layout(w, h float32) gui.Regions {
	return gui.DockLayout{
		LeftWidth:    leftPanelWidth,
		BottomHeight: ed.bottomHeight,
		RightWidth:   rightPanelWidth,
	}.Split(w, h)
}

func (ed *Editor) setCentral(r gui.Rect, pixelsPerPoint float32) {
	ed.viewport = gui.ViewportFromRect(r, pixelsPerPoint)
	ed.hasViewport = true
}

// resizeBottom sets the bottom panel height, never going below the minimum
// height or above the display.
func (ed *Editor) resizeBottom(h, displayHeight float32) {
	ed.bottomHeight = max(min(h, displayHeight), bottomMinHeight)
}

// fieldSlot is the component edited by the drag field shown at position
// displayIndex of row f.
func (ed *Editor) fieldSlot(f scene.Field, displayIndex int) *float32 {
	return &ed.transform.Vec(f)[displayAxes[displayIndex]]
}

const panelFlags = imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoBringToFrontOnFocus

// Build declares every panel. display is the window size in points.
func (ed *Editor) Build(display imgui.Vec2, pixelsPerPoint float32, fps int) {
	ed.labels.Reset()
	r := ed.layout(display.X, display.Y)

	ed.hierarchyPanel(r.Left)
	ed.bottomPanel(r.Bottom, display.Y)
	// The splitter may have moved the bottom edge of the other panels.
	r = ed.layout(display.X, display.Y)
	ed.propertiesPanel(r.Right)
	ed.centralPanel(r.Central, fps)

	ed.setCentral(r.Central, pixelsPerPoint)
}

func placeNext(r gui.Rect) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: r.X, Y: r.Y}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: max(r.W, 0), Y: max(r.H, 0)}, imgui.ConditionAlways)
}

func (ed *Editor) hierarchyPanel(r gui.Rect) {
	placeNext(r)
	if imgui.BeginV("Hierarchy", nil, panelFlags|imgui.WindowFlagsNoResize) {
		treeNode(ed.hierarchy, imgui.TreeNodeFlagsDefaultOpen)
	}
	imgui.End()
}

func treeNode(n scene.Node, flags imgui.TreeNodeFlags) {
	if !n.IsGroup() {
		imgui.Text(n.Name)
		return
	}
	if imgui.TreeNodeV(n.Name, flags) {
		for _, c := range n.Children {
			treeNode(c, 0)
		}
		imgui.TreePop()
	}
}

func (ed *Editor) bottomPanel(r gui.Rect, displayHeight float32) {
	placeNext(r)
	if imgui.BeginV("Bottom panel", nil, panelFlags|imgui.WindowFlagsNoResize|imgui.WindowFlagsNoTitleBar) {
		ed.splitter(displayHeight)

		imgui.PushStyleVarFloat(imgui.StyleVarFrameRounding, 0)
		imgui.PushStyleColor(imgui.StyleColorHeaderHovered, vec4(colors.Gray.WithAlpha(0.6)))
		for i, t := range tabs {
			if i > 0 {
				imgui.SameLine()
			}
			label := t.String()
			size := imgui.CalcTextSize(label, false, 0)
			if imgui.SelectableV(label, ed.tab == t, 0, imgui.Vec2{X: size.X}) {
				ed.Select(t)
			}
		}
		imgui.PopStyleColor()
		imgui.PopStyleVar()

		imgui.Separator()
		switch ed.tab {
		case TabConsole:
			imgui.PushStyleColor(imgui.StyleColorText, vec4(colors.Muted))
			for _, line := range consoleLines {
				imgui.Text(line)
			}
			imgui.PopStyleColor()
		case TabContentBrowser:
			heading(TabContentBrowser.String())
		}
	}
	imgui.End()
}

// splitter is a strip along the top of the bottom panel. Dragging it up
// grows the panel.
func (ed *Editor) splitter(displayHeight float32) {
	imgui.InvisibleButton("##splitter", imgui.Vec2{X: max(imgui.ContentRegionAvail().X, 1), Y: splitterHeight})
	if imgui.IsItemHovered() || imgui.IsItemActive() {
		imgui.SetMouseCursor(imgui.MouseCursorResizeNS)
	}
	if imgui.IsItemActivated() {
		ed.dragFrom = ed.bottomHeight
	}
	if imgui.IsItemActive() {
		ed.resizeBottom(ed.dragFrom-imgui.MouseDragDelta(0, 0).Y, displayHeight)
	}
}

func (ed *Editor) propertiesPanel(r gui.Rect) {
	placeNext(r)
	if imgui.BeginV("Properties", nil, panelFlags|imgui.WindowFlagsNoResize) {
		heading("Transform")
		for _, row := range transformFields {
			imgui.PushID(row.field.String())
			imgui.Text(row.field.String())
			imgui.SameLine()
			imgui.PushItemWidth(45)
			for i := range displayAxes {
				if i > 0 {
					imgui.SameLine()
				}
				label := "##" + axisNames[displayAxes[i]]
				imgui.DragFloatV(label, ed.fieldSlot(row.field, i), row.speed, 0, 0, "%.2f", 0)
			}
			imgui.PopItemWidth()
			imgui.PopID()
		}
	}
	imgui.End()
}

func (ed *Editor) centralPanel(r gui.Rect, fps int) {
	placeNext(r)
	flags := panelFlags | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoBackground
	if imgui.BeginV("Viewport", nil, flags) {
		heading("Canopy Demo Application")
		m := ed.labels.Mark()
		imgui.Text(ed.labels.S("FPS: ").I(fps).ViewFrom(m))
	}
	imgui.End()
}

func heading(s string) {
	imgui.PushStyleColor(imgui.StyleColorText, vec4(colors.Heading))
	imgui.Text(s)
	imgui.PopStyleColor()
}

func vec4(c colors.Color) imgui.Vec4 {
	return imgui.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}

func vec2(s [2]int) imgui.Vec2 {
	return imgui.Vec2{X: float32(s[0]), Y: float32(s[1])}
}
