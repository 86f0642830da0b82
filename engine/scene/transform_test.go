package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v, got %v", want, got)
}

func TestDefaultTransform(t *testing.T) {
	tr := DefaultTransform()
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, tr.Translate)
	assert.Equal(t, mgl32.Vec3{}, tr.Rotate)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assertVecNear(t, mgl32.Vec3{0, 0, -5}, apply(tr.Model(), mgl32.Vec3{}))
}

func TestModelScaleThenTranslate(t *testing.T) {
	tr := DefaultTransform()
	tr.Scale = mgl32.Vec3{2, 2, 2}
	assertVecNear(t, mgl32.Vec3{2, 2, -3}, apply(tr.Model(), mgl32.Vec3{1, 1, 1}))
}

func TestModelRotationOrder(t *testing.T) {
	tr := Transform{Scale: mgl32.Vec3{1, 1, 1}, Rotate: mgl32.Vec3{90, 0, 90}}
	// X is applied first, then Z.
	assertVecNear(t, mgl32.Vec3{0, 0, 1}, apply(tr.Model(), mgl32.Vec3{0, 1, 0}))
}

func TestModelRotateZ(t *testing.T) {
	tr := DefaultTransform()
	tr.Rotate[2] = 90
	assertVecNear(t, mgl32.Vec3{0, 1, -5}, apply(tr.Model(), mgl32.Vec3{1, 0, 0}))
}

func TestVecSelectsField(t *testing.T) {
	tr := DefaultTransform()
	tr.Vec(FieldRotate)[2] = 45
	assert.Equal(t, mgl32.Vec3{0, 0, 45}, tr.Rotate)
	assert.Equal(t, DefaultTransform().Translate, tr.Translate)
	assert.Equal(t, DefaultTransform().Scale, tr.Scale)

	require.NotNil(t, tr.Vec(FieldScale))
	assert.Nil(t, tr.Vec(Field(7)))
	assert.Equal(t, "Translate", FieldTranslate.String())
}
