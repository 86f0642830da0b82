package scene3d

// Mesh is an indexed triangle list with interleaved position (xyz) and
// color (rgb) per vertex.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

const (
	floatsPerVertex = 6
	vertexStride    = floatsPerVertex * 4 // bytes
	colorOffset     = 3 * 4               // bytes
)

func (m Mesh) VertexCount() int { return len(m.Vertices) / floatsPerVertex }

var faceColors = [6][3]float32{
	{1, 0, 0}, // front
	{0, 1, 0}, // back
	{0, 0, 1}, // right
	{1, 1, 0}, // left
	{0, 1, 1}, // top
	{1, 0, 1}, // bottom
}

// Corners of each face, counter-clockwise seen from outside.
var faceCorners = [6][4][3]float32{
	{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
	{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
	{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
	{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
}

// Cube returns a unit cube centered at the origin with one flat color per face.
func Cube() Mesh {
	m := Mesh{
		Vertices: make([]float32, 0, 6*4*floatsPerVertex),
		Indices:  make([]uint32, 0, 6*6),
	}
	for f, corners := range faceCorners {
		base := uint32(f * 4)
		for _, p := range corners {
			c := faceColors[f]
			m.Vertices = append(m.Vertices, p[0], p[1], p[2], c[0], c[1], c[2])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}
