package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/poslight/internal/engine/input"
	"github.com/Faultbox/poslight/pkg/math"
)

func press(s *State, k input.Key) bool {
	return s.HandleKey(input.KeyEvent(k, input.Press))
}

func release(s *State, k input.Key) bool {
	return s.HandleKey(input.KeyEvent(k, input.Release))
}

func TestHeldKeysStepState(t *testing.T) {
	tests := []struct {
		key   input.Key
		check func(s *State) float32
		want  float32
	}{
		{'Q', func(s *State) float32 { return s.AngleIncX }, -0.05},
		{'W', func(s *State) float32 { return s.AngleIncX }, 0.05},
		{'E', func(s *State) float32 { return s.AngleIncY }, -0.05},
		{'R', func(s *State) float32 { return s.AngleIncY }, 0.05},
		{'T', func(s *State) float32 { return s.AngleIncZ }, -0.05},
		{'Y', func(s *State) float32 { return s.AngleIncZ }, 0.05},
		{'A', func(s *State) float32 { return s.ModelScale }, 0.9},
		{'S', func(s *State) float32 { return s.ModelScale }, 1.1},
		{'Z', func(s *State) float32 { return s.Position.X }, 0},
		{'X', func(s *State) float32 { return s.Position.X }, 0.1},
		{'C', func(s *State) float32 { return s.Position.Y }, -0.05},
		{'V', func(s *State) float32 { return s.Position.Y }, 0.05},
		{'B', func(s *State) float32 { return s.Position.Z }, -0.05},
		{'N', func(s *State) float32 { return s.Position.Z }, 0.05},
		{'1', func(s *State) float32 { return s.Light.X }, -0.05},
		{'2', func(s *State) float32 { return s.Light.X }, 0.05},
		{'3', func(s *State) float32 { return s.Light.Y }, 0.95},
		{'4', func(s *State) float32 { return s.Light.Y }, 1.05},
		{'5', func(s *State) float32 { return s.Light.Z }, -0.05},
		{'6', func(s *State) float32 { return s.Light.Z }, 0.05},
		{'7', func(s *State) float32 { return s.Camera.AngleX }, -1},
		{'8', func(s *State) float32 { return s.Camera.AngleX }, 1},
		{'9', func(s *State) float32 { return s.Camera.AngleY }, -1},
		{'0', func(s *State) float32 { return s.Camera.AngleY }, 1},
		{'O', func(s *State) float32 { return s.Camera.AngleZ }, -1},
		{'P', func(s *State) float32 { return s.Camera.AngleZ }, 1},
	}

	for _, tt := range tests {
		t.Run(string(rune(tt.key)), func(t *testing.T) {
			s := DefaultState()
			assert.False(t, press(s, tt.key))
			assert.InDelta(t, tt.want, tt.check(s), 1e-6)

			// Release does not step again.
			release(s, tt.key)
			assert.InDelta(t, tt.want, tt.check(s), 1e-6)
		})
	}
}

func TestRepeatSteps(t *testing.T) {
	s := DefaultState()
	press(s, 'W')
	s.HandleKey(input.KeyEvent('W', input.Repeat))
	s.HandleKey(input.KeyEvent('W', input.Repeat))
	assert.InDelta(t, 0.15, s.AngleIncX, 1e-6)
}

func TestDrawModeCyclesOnRelease(t *testing.T) {
	s := DefaultState()
	s.DrawMode = DrawPoints

	press(s, ',')
	assert.Equal(t, DrawPoints, s.DrawMode)
	s.HandleKey(input.KeyEvent(',', input.Repeat))
	assert.Equal(t, DrawPoints, s.DrawMode)

	want := []DrawMode{DrawLines, DrawFilled, DrawPoints, DrawLines}
	for _, m := range want {
		release(s, ',')
		assert.Equal(t, m, s.DrawMode)
	}
}

func TestAttenuationToggleTwiceRestores(t *testing.T) {
	s := DefaultState()
	before := s.Attenuation

	press(s, '.')
	assert.Equal(t, before, s.Attenuation)
	release(s, '.')
	assert.Equal(t, !before, s.Attenuation)
	release(s, '.')
	assert.Equal(t, before, s.Attenuation)
}

func TestColourModeToggle(t *testing.T) {
	s := DefaultState()
	press(s, 'M')
	assert.Equal(t, ColourShaded, s.ColourMode)
	release(s, 'M')
	assert.Equal(t, ColourFlat, s.ColourMode)
	release(s, 'M')
	assert.Equal(t, ColourShaded, s.ColourMode)
}

func TestEscapeQuitsOnPress(t *testing.T) {
	s := DefaultState()
	assert.False(t, release(s, input.KeyEscape))
	assert.True(t, press(s, input.KeyEscape))
}

func TestUnknownKeysIgnored(t *testing.T) {
	s := DefaultState()
	before := *s
	press(s, 'U')
	release(s, 'U')
	press(s, input.KeyUnknown)
	assert.Equal(t, before, *s)
}

func TestNoRangeValidation(t *testing.T) {
	s := DefaultState()
	for i := 0; i < 20; i++ {
		press(s, 'A')
	}
	assert.Less(t, s.ModelScale, float32(0))
}

func TestHandleEventResize(t *testing.T) {
	tests := []struct {
		w, h int
		want float32
	}{
		{640, 480, 4.0 / 3.0},
		{1000, 600, 6.25 / 3.75},
		{800, 600, 4.0 / 3.0},
		{1024, 768, 4.0 / 3.0},
	}
	for _, tt := range tests {
		s := DefaultState()
		assert.False(t, s.HandleEvent(input.ResizeEvent(tt.w, tt.h)))
		assert.InDelta(t, tt.want, s.Camera.Aspect, 1e-5)
	}
}

func TestHandleEventQuit(t *testing.T) {
	s := DefaultState()
	assert.True(t, s.HandleEvent(input.Event{Type: input.EventQuit}))
	assert.True(t, s.HandleEvent(input.KeyEvent(input.KeyEscape, input.Press)))
	assert.False(t, s.HandleEvent(input.KeyEvent('W', input.Press)))
	assert.Equal(t, math.Vec3{X: 0.05}, s.Position)
}
