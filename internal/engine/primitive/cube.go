package primitive

// Cube returns a unit cube centred on the origin (edges from -0.5 to 0.5).
// Each face has its own four vertices so normals stay flat.
func Cube() *Mesh {
	faces := []struct {
		normal [3]float32
		u, v   [3]float32
	}{
		{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		corner := func(su, sv float32) [3]float32 {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = 0.5*f.normal[i] + 0.5*su*f.u[i] + 0.5*sv*f.v[i]
			}
			return p
		}
		a := m.addVertex(corner(-1, -1), f.normal)
		b := m.addVertex(corner(1, -1), f.normal)
		c := m.addVertex(corner(1, 1), f.normal)
		d := m.addVertex(corner(-1, 1), f.normal)
		m.addQuad(a, b, c, d)
	}
	return m
}
