package scene3d

import (
	"testing"

	"github.com/hubastard/canopy/engine/core"
	"github.com/stretchr/testify/assert"
)

func TestCubeMesh(t *testing.T) {
	m := Cube()
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)
	for _, i := range m.Indices {
		assert.Less(t, i, uint32(24))
	}
	for v := 0; v < m.VertexCount(); v++ {
		for axis := 0; axis < 3; axis++ {
			p := m.Vertices[v*floatsPerVertex+axis]
			assert.True(t, p == 0.5 || p == -0.5)
		}
	}
}

func TestCubeFacesPointOutward(t *testing.T) {
	m := Cube()
	pos := func(i uint32) [3]float32 {
		o := int(i) * floatsPerVertex
		return [3]float32{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
	}
	for tri := 0; tri < len(m.Indices); tri += 3 {
		a, b, c := pos(m.Indices[tri]), pos(m.Indices[tri+1]), pos(m.Indices[tri+2])
		u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{u[1]*v[2] - u[2]*v[1], u[2]*v[0] - u[0]*v[2], u[0]*v[1] - u[1]*v[0]}
		center := [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		dot := n[0]*center[0] + n[1]*center[1] + n[2]*center[2]
		assert.Greater(t, dot, float32(0), "triangle %d winds inward", tri/3)
	}
}

func TestVisibleTracksEmptyTransitions(t *testing.T) {
	r := &Renderer{}
	assert.True(t, r.visible(core.NewViewport(0, 0, 10, 10)))
	assert.False(t, r.empty)

	assert.False(t, r.visible(core.NewViewport(0, 0, 0, 10)))
	assert.True(t, r.empty)
	assert.False(t, r.visible(core.NewViewport(5, 5, 10, 0)))

	assert.True(t, r.visible(core.NewViewport(0, 0, 1, 1)))
	assert.False(t, r.empty)
}
