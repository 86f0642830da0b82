package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Clipboard is the system clipboard reached through a GLFW window.
type Clipboard struct {
	w *glfw.Window
}

// Text returns the clipboard contents. GLFW reports a missing or
// non-text clipboard by panicking; that becomes an error here.
func (c Clipboard) Text() (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard: %v", r)
		}
	}()
	return c.w.GetClipboardString(), nil
}

func (c Clipboard) SetText(s string) { c.w.SetClipboardString(s) }
