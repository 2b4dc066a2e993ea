package primitive

import "math"

const tubeRadius = 0.5

// Tube returns a hollow cylinder along the Z axis, from z=-0.5 to z=0.5 with
// an outer radius of 0.5. inner is the inner radius as a fraction of the
// outer one; 0 gives a solid rod, values near 1 a thin ring. segments is the
// number of subdivisions around each ring.
func Tube(segments int, inner float32) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if inner < 0 {
		inner = 0
	}
	if inner > 0.99 {
		inner = 0.99
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (segments+1)*8),
		Indices:  make([]uint32, 0, segments*24),
	}

	ro := float32(tubeRadius)
	ri := ro * inner
	const zBack, zFront = -0.5, 0.5

	ring := func(j int) (c, s float32) {
		a := 2 * math.Pi * float64(j) / float64(segments)
		return float32(math.Cos(a)), float32(math.Sin(a))
	}

	// Each band owns its vertices so normals do not blend across edges.
	band := func(emit func(c, s float32) (p0, p1, n0, n1 [3]float32), flip bool) {
		base := uint32(len(m.Vertices))
		for j := 0; j <= segments; j++ {
			c, s := ring(j)
			p0, p1, n0, n1 := emit(c, s)
			m.addVertex(p0, n0)
			m.addVertex(p1, n1)
		}
		for j := uint32(0); j < uint32(segments); j++ {
			a := base + j*2
			b := a + 2
			if flip {
				m.addQuad(a, a+1, b+1, b)
			} else {
				m.addQuad(a, b, b+1, a+1)
			}
		}
	}

	// outer wall
	band(func(c, s float32) (p0, p1, n0, n1 [3]float32) {
		n := [3]float32{c, s, 0}
		return [3]float32{ro * c, ro * s, zBack}, [3]float32{ro * c, ro * s, zFront}, n, n
	}, false)

	// inner wall, facing the axis
	if ri > 0 {
		band(func(c, s float32) (p0, p1, n0, n1 [3]float32) {
			n := [3]float32{-c, -s, 0}
			return [3]float32{ri * c, ri * s, zBack}, [3]float32{ri * c, ri * s, zFront}, n, n
		}, true)
	}

	// front and back annuli (a disc when ri is 0)
	front := [3]float32{0, 0, 1}
	back := [3]float32{0, 0, -1}
	band(func(c, s float32) (p0, p1, n0, n1 [3]float32) {
		return [3]float32{ri * c, ri * s, zFront}, [3]float32{ro * c, ro * s, zFront}, front, front
	}, true)
	band(func(c, s float32) (p0, p1, n0, n1 [3]float32) {
		return [3]float32{ri * c, ri * s, zBack}, [3]float32{ro * c, ro * s, zBack}, back, back
	}, false)

	return m
}
