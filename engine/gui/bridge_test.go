package gui

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestKeyMapIsUnique(t *testing.T) {
	imguiKeys := map[int]bool{}
	coreKeys := map[core.Key]bool{}
	for _, k := range keyMap {
		assert.False(t, imguiKeys[k.imgui], "imgui key %d mapped twice", k.imgui)
		assert.False(t, coreKeys[k.key], "key %d mapped twice", k.key)
		assert.NotEqual(t, core.KeyUnknown, k.key)
		imguiKeys[k.imgui] = true
		coreKeys[k.key] = true
	}
}

func TestMouseButton(t *testing.T) {
	for b, want := range map[core.MouseButton]int{
		core.MouseLeft:   0,
		core.MouseRight:  1,
		core.MouseMiddle: 2,
	} {
		got, ok := mouseButton(b)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := mouseButton(core.MouseButtonCount)
	assert.False(t, ok)
}
