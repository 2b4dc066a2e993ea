package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/engine/lighting"
	"github.com/Faultbox/poslight/internal/engine/transform"
	"github.com/Faultbox/poslight/internal/logger"
	"github.com/Faultbox/poslight/pkg/math"
)

// Frame carries the values shared by every part in one frame.
type Frame struct {
	View        math.Mat4
	Projection  math.Mat4
	Lights      *lighting.Buffer
	ColourMode  ColourMode
	Attenuation bool
	DrawMode    DrawMode
}

// Target receives the draws of one frame. The renderer implements it; tests
// record into a slice.
type Target interface {
	BeginFrame(f *Frame)
	DrawPart(p Part)
	EndFrame()
}

// Driver walks the scene once per frame.
type Driver struct {
	state  *State
	stack  *transform.Stack
	lights *lighting.Buffer

	// valid only during Render
	frame  Frame
	target Target
	parts  int
}

// NewDriver creates a driver for s.
func NewDriver(s *State) *Driver {
	return &Driver{
		state:  s,
		stack:  transform.New(),
		lights: lighting.NewBuffer(),
	}
}

// StackDepth reports the current transform stack depth. It is 1 between
// frames.
func (d *Driver) StackDepth() int {
	return d.stack.Depth()
}

// StackTop returns the matrix at the top of the transform stack.
func (d *Driver) StackTop() math.Mat4 {
	return d.stack.Top()
}

// Render draws one frame into t and then advances the animation.
func (d *Driver) Render(t Target) {
	s := d.state
	view := s.Camera.ViewMatrix()

	d.lights.Clear()
	d.lights.AddWorld(view, s.Light)

	d.frame = Frame{
		View:        view,
		Projection:  s.Camera.ProjectionMatrix(),
		Lights:      d.lights,
		ColourMode:  s.ColourMode,
		Attenuation: s.Attenuation,
		DrawMode:    s.DrawMode,
	}
	d.target = t
	d.parts = 0

	t.BeginFrame(&d.frame)
	d.drawLight()
	d.drawDrone()
	t.EndFrame()

	d.target = nil
	if d.stack.Depth() != 1 {
		logger.Warn("transform stack unbalanced after frame", zap.Int("depth", d.stack.Depth()))
		d.stack.Reset()
	}
	if d.parts != PartsPerFrame {
		logger.Debug("unexpected part count", zap.Int("parts", d.parts))
	}

	s.Advance()
}
