package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/engine/input"
	"github.com/Faultbox/poslight/internal/logger"
)

// Fixed steps used by the controls.
const (
	scaleStepDivisor = 0.5
	cameraStep       = 1.0
)

// HandleKey applies one key event to the state and reports whether the
// program should quit. Held keys act on press and auto-repeat; the toggles
// act on release so holding them does not flicker.
func (s *State) HandleKey(ev input.Event) (quit bool) {
	if ev.Type != input.EventKey {
		return false
	}

	if ev.Key == input.KeyEscape {
		return ev.Action == input.Press
	}

	if !ev.Action.Down() {
		s.handleToggle(ev.Key)
		return false
	}

	step := s.Speed
	switch ev.Key {
	case 'Q':
		s.AngleIncX -= step
	case 'W':
		s.AngleIncX += step
	case 'E':
		s.AngleIncY -= step
	case 'R':
		s.AngleIncY += step
	case 'T':
		s.AngleIncZ -= step
	case 'Y':
		s.AngleIncZ += step

	case 'A':
		s.ModelScale -= step / scaleStepDivisor
	case 'S':
		s.ModelScale += step / scaleStepDivisor

	case 'Z':
		s.Position.X -= step
	case 'X':
		s.Position.X += step
	case 'C':
		s.Position.Y -= step
	case 'V':
		s.Position.Y += step
	case 'B':
		s.Position.Z -= step
	case 'N':
		s.Position.Z += step

	case '1':
		s.Light.X -= step
	case '2':
		s.Light.X += step
	case '3':
		s.Light.Y -= step
	case '4':
		s.Light.Y += step
	case '5':
		s.Light.Z -= step
	case '6':
		s.Light.Z += step

	case '7':
		s.Camera.Rotate(-cameraStep, 0, 0)
	case '8':
		s.Camera.Rotate(cameraStep, 0, 0)
	case '9':
		s.Camera.Rotate(0, -cameraStep, 0)
	case '0':
		s.Camera.Rotate(0, cameraStep, 0)
	case 'O':
		s.Camera.Rotate(0, 0, -cameraStep)
	case 'P':
		s.Camera.Rotate(0, 0, cameraStep)
	}
	return false
}

func (s *State) handleToggle(k input.Key) {
	switch k {
	case 'M':
		s.ColourMode = s.ColourMode.Toggle()
		logger.Debug("colour mode", zap.Stringer("mode", s.ColourMode))
	case '.':
		s.Attenuation = !s.Attenuation
		logger.Debug("attenuation", zap.Bool("enabled", s.Attenuation))
	case ',':
		s.DrawMode = s.DrawMode.Next()
		logger.Debug("draw mode", zap.Stringer("mode", s.DrawMode))
	}
}

// HandleEvent applies a key or resize event. Returns true when the program
// should quit.
func (s *State) HandleEvent(ev input.Event) (quit bool) {
	switch ev.Type {
	case input.EventQuit:
		return true
	case input.EventWindowResize:
		aspect := s.Resize(ev.Width, ev.Height)
		logger.Debug("resize", zap.Int("width", ev.Width), zap.Int("height", ev.Height),
			zap.Float32("aspect", aspect))
	case input.EventKey:
		return s.HandleKey(ev)
	}
	return false
}
