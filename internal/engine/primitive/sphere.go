package primitive

import "math"

// Sphere returns a unit-radius sphere centred on the origin, split into
// lats rings and longs segments. Normals equal the unit positions.
func Sphere(lats, longs int) *Mesh {
	if lats < 2 {
		lats = 2
	}
	if longs < 3 {
		longs = 3
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (lats+1)*(longs+1)),
		Indices:  make([]uint32, 0, lats*longs*6),
	}

	for i := 0; i <= lats; i++ {
		theta := math.Pi * float64(i) / float64(lats) // 0 at +Y pole
		y := math.Cos(theta)
		r := math.Sin(theta)
		for j := 0; j <= longs; j++ {
			phi := 2 * math.Pi * float64(j) / float64(longs)
			p := [3]float32{
				float32(r * math.Sin(phi)),
				float32(y),
				float32(r * math.Cos(phi)),
			}
			m.addVertex(p, p)
		}
	}

	row := uint32(longs + 1)
	for i := 0; i < lats; i++ {
		for j := 0; j < longs; j++ {
			top := uint32(i)*row + uint32(j)
			bottom := top + row
			m.addQuad(top, bottom, bottom+1, top+1)
		}
	}
	return m
}
