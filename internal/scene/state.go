// Package scene holds the demo state, the keyboard controls that mutate it,
// and the per-frame walk that places every drone part.
package scene

import (
	"fmt"

	"github.com/Faultbox/poslight/internal/config"
	"github.com/Faultbox/poslight/internal/engine/camera"
	"github.com/Faultbox/poslight/pkg/math"
)

// DrawMode selects the rasterization style.
type DrawMode uint32

const (
	DrawPoints DrawMode = iota
	DrawLines
	DrawFilled

	drawModeCount
)

func (m DrawMode) String() string {
	switch m {
	case DrawPoints:
		return "points"
	case DrawLines:
		return "lines"
	case DrawFilled:
		return "filled"
	default:
		return fmt.Sprintf("DrawMode(%d)", uint32(m))
	}
}

// Next returns the following mode, wrapping after filled.
func (m DrawMode) Next() DrawMode {
	return (m + 1) % drawModeCount
}

// ParseDrawMode converts a config name to a DrawMode.
func ParseDrawMode(s string) (DrawMode, error) {
	for m := DrawPoints; m < drawModeCount; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown draw mode %q", s)
}

// ColourMode selects between lit and flat colouring. The numeric values are
// what the shader's colourMode uniform expects.
type ColourMode uint32

const (
	ColourShaded ColourMode = 0
	ColourFlat   ColourMode = 1
)

func (m ColourMode) String() string {
	if m == ColourFlat {
		return "flat"
	}
	return "shaded"
}

// Toggle flips between shaded and flat.
func (m ColourMode) Toggle() ColourMode {
	if m == ColourFlat {
		return ColourShaded
	}
	return ColourFlat
}

// ParseColourMode converts a config name to a ColourMode.
func ParseColourMode(s string) (ColourMode, error) {
	switch s {
	case "shaded", "":
		return ColourShaded, nil
	case "flat":
		return ColourFlat, nil
	default:
		return 0, fmt.Errorf("unknown colour mode %q", s)
	}
}

// State is everything that persists between frames. Controls change it
// between frames; Driver.Render advances the animation counters.
type State struct {
	// Step used by the controls for rotation speed, position and light.
	Speed float32

	// Body rotation in degrees and the per-frame increments.
	AngleX, AngleY, AngleZ          float32
	AngleIncX, AngleIncY, AngleIncZ float32

	ModelScale float32
	Position   math.Vec3
	Light      math.Vec3

	Camera camera.Camera

	DrawMode    DrawMode
	ColourMode  ColourMode
	Attenuation bool

	// MotorAngle is the spin counter; each motor drawn consumes one step.
	MotorAngle float32
}

// NewState builds the initial state from configuration.
func NewState(sc config.SceneConfig, cc config.CameraConfig) (*State, error) {
	dm, err := ParseDrawMode(sc.DrawMode)
	if err != nil {
		return nil, err
	}
	cm, err := ParseColourMode(sc.ColourMode)
	if err != nil {
		return nil, err
	}

	cam := camera.New(cc.EyeDistance)
	cam.FovY = cc.FovDegrees
	cam.Near = cc.Near
	cam.Far = cc.Far

	return &State{
		Speed:       sc.Speed,
		ModelScale:  sc.ModelScale,
		Position:    math.Vec3{X: sc.Position[0], Y: sc.Position[1], Z: sc.Position[2]},
		Light:       math.Vec3{X: sc.Light[0], Y: sc.Light[1], Z: sc.Light[2]},
		Camera:      *cam,
		DrawMode:    dm,
		ColourMode:  cm,
		Attenuation: sc.Attenuation,
	}, nil
}

// DefaultState returns the state built from config.Default.
func DefaultState() *State {
	cfg := config.Default()
	s, err := NewState(cfg.Scene, cfg.Camera)
	if err != nil {
		panic(err)
	}
	return s
}

// Resize records a new framebuffer size and returns the aspect ratio.
func (s *State) Resize(width, height int) float32 {
	s.Camera.Aspect = camera.AspectRatio(width, height)
	return s.Camera.Aspect
}

// Advance applies one frame of rotation. Speed is tied to the frame rate.
func (s *State) Advance() {
	s.AngleX += s.AngleIncX
	s.AngleY += s.AngleIncY
	s.AngleZ += s.AngleIncZ
}
