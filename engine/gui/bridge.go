package gui

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/inkyblackness/imgui-go/v4"
)

// imgui addresses keys by native index; the native index of a key is its
// core.Key value.
var keyMap = []struct {
	imgui int
	key   core.Key
}{
	{imgui.KeyTab, core.KeyTab},
	{imgui.KeyLeftArrow, core.KeyLeft},
	{imgui.KeyRightArrow, core.KeyRight},
	{imgui.KeyUpArrow, core.KeyUp},
	{imgui.KeyDownArrow, core.KeyDown},
	{imgui.KeyPageUp, core.KeyPageUp},
	{imgui.KeyPageDown, core.KeyPageDown},
	{imgui.KeyHome, core.KeyHome},
	{imgui.KeyEnd, core.KeyEnd},
	{imgui.KeyInsert, core.KeyInsert},
	{imgui.KeyDelete, core.KeyDelete},
	{imgui.KeyBackspace, core.KeyBackspace},
	{imgui.KeySpace, core.KeySpace},
	{imgui.KeyEnter, core.KeyEnter},
	{imgui.KeyEscape, core.KeyEscape},
	{imgui.KeyA, core.KeyA},
	{imgui.KeyC, core.KeyC},
	{imgui.KeyV, core.KeyV},
	{imgui.KeyX, core.KeyX},
	{imgui.KeyY, core.KeyY},
	{imgui.KeyZ, core.KeyZ},
}

func mapKeys(io imgui.IO) {
	for _, k := range keyMap {
		io.KeyMap(k.imgui, int(k.key))
	}
}

// mouseButton returns the imgui button index.
func mouseButton(b core.MouseButton) (int, bool) {
	switch b {
	case core.MouseLeft:
		return 0, true
	case core.MouseRight:
		return 1, true
	case core.MouseMiddle:
		return 2, true
	}
	return 0, false
}

// HandleEvent feeds key and scale events to imgui and reports whether imgui
// wants to keep the key from the rest of the app. Mouse and text reach imgui
// through FrameInput.Input.
func (c *Context) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventKey:
		if e.Down {
			c.io.KeyPress(int(e.Key))
		} else {
			c.io.KeyRelease(int(e.Key))
		}
		c.io.KeyCtrl(int(core.KeyLeftCtrl), int(core.KeyRightCtrl))
		c.io.KeyShift(int(core.KeyLeftShift), int(core.KeyRightShift))
		c.io.KeyAlt(int(core.KeyLeftAlt), int(core.KeyRightAlt))
		c.io.KeySuper(int(core.KeyLeftSuper), int(core.KeyRightSuper))
		return c.io.WantCaptureKeyboard()
	case core.EventContentScale:
		c.SetContentScale(max(e.X, e.Y))
	}
	return false
}

// WantsKeyboard reports whether a widget has keyboard focus.
func (c *Context) WantsKeyboard() bool { return c.io.WantCaptureKeyboard() }
