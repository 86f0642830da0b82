package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferBuildsLabels(t *testing.T) {
	b := New(8)
	m := b.Mark()
	b.S("FPS: ").I(144)
	assert.Equal(t, "FPS: 144", b.ViewFrom(m))

	m = b.Mark()
	b.F64(3.14159, 2).R(' ').R('µ').S("s")
	assert.Equal(t, "3.14 µs", b.StringFrom(m))
}

func TestViewSurvivesGrowth(t *testing.T) {
	b := New(4)
	m := b.Mark()
	b.S("abcd")
	view := b.ViewFrom(m)
	b.S("efghijkl")
	assert.Equal(t, "abcd", view)
	assert.Greater(t, b.Cap(), 4)
}

func TestResetKeepsCapacity(t *testing.T) {
	b := New(0)
	assert.Equal(t, 1024, b.Cap())
	b.S("hello")
	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, 1024, b.Cap())
	assert.Equal(t, "", b.ViewFrom(b.Mark()))
}
