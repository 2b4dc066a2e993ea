// Package primitive builds vertex and index data for the basic shapes the
// drone is assembled from. Nothing here touches OpenGL; the renderer uploads
// the result.
package primitive

// Vertex is one mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh holds indexed triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < lo[i] {
				lo[i] = v.Position[i]
			}
			if v.Position[i] > hi[i] {
				hi[i] = v.Position[i]
			}
		}
	}
	return lo, hi
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// addQuad appends two triangles covering a, b, c, d (counter-clockwise).
func (m *Mesh) addQuad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

func (m *Mesh) addVertex(pos, normal [3]float32) uint32 {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: normal})
	return uint32(len(m.Vertices) - 1)
}
