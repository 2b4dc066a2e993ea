// Package transform provides the matrix stack used to compose nested
// local-to-world transforms.
package transform

import (
	"fmt"

	"github.com/Faultbox/poslight/pkg/math"
)

// MaxDepth is the number of matrices a Stack can hold.
const MaxDepth = 16

// Stack is a fixed-capacity stack of model matrices. The zero value is not
// ready for use; call New or Reset first.
//
// Every operation post-multiplies the top, so the last operation applied is
// the first one a vertex sees.
type Stack struct {
	items [MaxDepth]math.Mat4
	depth int
}

// New returns a stack holding a single identity matrix.
func New() *Stack {
	s := &Stack{}
	s.Reset()
	return s
}

// Reset drops everything and leaves a single identity matrix.
func (s *Stack) Reset() {
	s.items[0] = math.Identity()
	s.depth = 1
}

// Depth returns the number of matrices on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Top returns a copy of the current matrix.
func (s *Stack) Top() math.Mat4 {
	return s.items[s.depth-1]
}

// Push duplicates the top so a child inherits its parent's transform.
// Panics when MaxDepth is exceeded.
func (s *Stack) Push() {
	if s.depth == MaxDepth {
		panic(fmt.Sprintf("transform: stack overflow (max depth %d)", MaxDepth))
	}
	s.items[s.depth] = s.items[s.depth-1]
	s.depth++
}

// Pop discards the top. Panics if it would remove the base entry.
func (s *Stack) Pop() math.Mat4 {
	if s.depth <= 1 {
		panic("transform: pop would remove the base matrix")
	}
	s.depth--
	return s.items[s.depth]
}

// Apply post-multiplies the top by m.
func (s *Stack) Apply(m math.Mat4) {
	s.items[s.depth-1] = s.items[s.depth-1].Mul(m)
}

// Translate post-multiplies the top by a translation.
func (s *Stack) Translate(x, y, z float32) {
	s.Apply(math.Translate(x, y, z))
}

// Scale post-multiplies the top by a scale.
func (s *Stack) Scale(x, y, z float32) {
	s.Apply(math.Scale(x, y, z))
}

// ScaleUniform scales all three axes by f.
func (s *Stack) ScaleUniform(f float32) {
	s.Apply(math.Scale(f, f, f))
}

// RotateX post-multiplies the top by a rotation of deg degrees around X.
func (s *Stack) RotateX(deg float32) {
	s.Apply(math.RotateX(math.Radians(deg)))
}

// RotateY post-multiplies the top by a rotation of deg degrees around Y.
func (s *Stack) RotateY(deg float32) {
	s.Apply(math.RotateY(math.Radians(deg)))
}

// RotateZ post-multiplies the top by a rotation of deg degrees around Z.
func (s *Stack) RotateZ(deg float32) {
	s.Apply(math.RotateZ(math.Radians(deg)))
}
