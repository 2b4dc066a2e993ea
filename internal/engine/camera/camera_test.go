package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/poslight/pkg/math"
)

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{640, 480, 4.0 / 3.0},
		{1024, 768, 4.0 / 3.0},
		{800, 600, 4.0 / 3.0},
		{1000, 600, 6.25 / 3.75},
		{640, 0, 4.0 / 3.0 * 480},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, AspectRatio(tt.w, tt.h), 1e-4, "AspectRatio(%d, %d)", tt.w, tt.h)
	}
	assert.Equal(t, float32(4)/3, AspectRatio(640, 480), "reference size is exactly 4:3")
}

func TestViewMatrixDefault(t *testing.T) {
	c := New(4)
	v := c.ViewMatrix()

	origin := v.TransformPoint(math.Vec3{})
	assert.InDelta(t, 0, origin.X, 1e-6)
	assert.InDelta(t, 0, origin.Y, 1e-6)
	assert.InDelta(t, -4, origin.Z, 1e-6, "origin sits 4 units in front of the eye")
}

func TestViewMatrixRotation(t *testing.T) {
	c := New(4)
	c.Rotate(0, 90, 0)
	v := c.ViewMatrix()

	// A clockwise quarter turn around Y brings +X in front of the camera.
	p := v.TransformPoint(math.Vec3{X: 1})
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, -3, p.Z, 1e-5)

	want := math.LookAt(c.Eye, c.Center, c.Up).Mul(math.RotateY(math.Radians(-90)))
	assert.True(t, v.ApproxEqual(want, 1e-6))
}

func TestProjectionUsesAspect(t *testing.T) {
	c := New(4)
	c.Aspect = 2
	p := c.ProjectionMatrix()
	want := math.Perspective(math.Radians(60), 2, 0.1, 100)
	assert.Equal(t, want, p)
}
