package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform places an object in the world. Rotate holds Euler angles in
// degrees; every component is edited independently.
type Transform struct {
	Translate mgl32.Vec3
	Rotate    mgl32.Vec3
	Scale     mgl32.Vec3
}

// DefaultTransform puts the object five units in front of a camera at the
// origin looking down -Z.
func DefaultTransform() Transform {
	return Transform{
		Translate: mgl32.Vec3{0, 0, -5},
		Scale:     mgl32.Vec3{1, 1, 1},
	}
}

// Model returns T * Rz * Ry * Rx * S.
func (t Transform) Model() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotate[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotate[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotate[0])))
	return mgl32.Translate3D(t.Translate[0], t.Translate[1], t.Translate[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Field selects one of the three vectors of a Transform.
type Field int

const (
	FieldTranslate Field = iota
	FieldRotate
	FieldScale
)

func (f Field) String() string {
	switch f {
	case FieldTranslate:
		return "Translate"
	case FieldRotate:
		return "Rotate"
	case FieldScale:
		return "Scale"
	}
	return "Field(?)"
}

// Vec returns a pointer to the vector selected by f, for widgets that edit
// in place. It returns nil for unknown fields.
func (t *Transform) Vec(f Field) *mgl32.Vec3 {
	switch f {
	case FieldTranslate:
		return &t.Translate
	case FieldRotate:
		return &t.Rotate
	case FieldScale:
		return &t.Scale
	}
	return nil
}
