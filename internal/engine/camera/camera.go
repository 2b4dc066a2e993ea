// Package camera provides the fixed look-at camera and projection used by
// the demo.
package camera

import (
	"github.com/Faultbox/poslight/pkg/math"
)

// Camera looks from Eye at Center and can be spun around the world axes.
type Camera struct {
	Eye    math.Vec3
	Center math.Vec3
	Up     math.Vec3

	// Extra rotation applied to the whole scene, in degrees.
	AngleX, AngleY, AngleZ float32

	// Projection
	FovY   float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// New creates a camera at distance on the +Z axis looking at the origin.
func New(distance float32) *Camera {
	return &Camera{
		Eye:    math.Vec3{X: 0, Y: 0, Z: distance},
		Center: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:   60,
		Aspect: 4.0 / 3.0,
		Near:   0.1,
		Far:    100,
	}
}

// ViewMatrix returns lookAt(eye, center, up) followed by clockwise rotations
// around X, Y then Z by the accumulated angles.
func (c *Camera) ViewMatrix() math.Mat4 {
	view := math.LookAt(c.Eye, c.Center, c.Up)
	view = view.Mul(math.RotateX(-math.Radians(c.AngleX)))
	view = view.Mul(math.RotateY(-math.Radians(c.AngleY)))
	view = view.Mul(math.RotateZ(-math.Radians(c.AngleZ)))
	return view
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FovY), c.Aspect, c.Near, c.Far)
}

// Rotate adds to the accumulated angles.
func (c *Camera) Rotate(dx, dy, dz float32) {
	c.AngleX += dx
	c.AngleY += dy
	c.AngleZ += dz
}

// AspectRatio converts a framebuffer size into the aspect ratio the
// projection expects, measured against a 640x480 4:3 reference.
func AspectRatio(width, height int) float32 {
	if height == 0 {
		height = 1
	}
	return (float32(width) / 640 * 4) / (float32(height) / 480 * 3)
}
