// Package lighting holds the positional lights uploaded to the shader each
// frame.
package lighting

import "github.com/Faultbox/poslight/pkg/math"

// MaxLights is the size of the lightPos uniform array in the shader.
const MaxLights = 10

// Light is a positional light.
type Light struct {
	Position math.Vec4 // view space, w = 1
}

// Buffer holds the lights for one frame.
type Buffer struct {
	Lights []Light
	Count  int
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]Light, 0, MaxLights),
	}
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// Add appends a light.
// Returns false if the buffer is full.
func (b *Buffer) Add(light Light) bool {
	if b.Count >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// AddWorld transforms a world-space position by view and appends the result.
func (b *Buffer) AddWorld(view math.Mat4, pos math.Vec3) bool {
	return b.Add(Light{Position: view.MulVec4(pos.Vec4(1))})
}

// Positions returns positions as a flat float32 slice for glUniform4fv.
// Format: [x0, y0, z0, w0, x1, ...], always MaxLights entries long.
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxLights*4)
	for i, light := range b.Lights {
		copy(result[i*4:i*4+4], light.Position[:])
	}
	return result
}
