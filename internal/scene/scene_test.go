package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/poslight/internal/config"
	"github.com/Faultbox/poslight/pkg/math"
)

const tol = 1e-4

type recorder struct {
	frames int
	ended  int
	frame  Frame
	parts  []Part
}

func (r *recorder) BeginFrame(f *Frame) {
	r.frames++
	r.frame = *f
	r.parts = r.parts[:0]
}

func (r *recorder) DrawPart(p Part) {
	r.parts = append(r.parts, p)
}

func (r *recorder) EndFrame() {
	r.ended++
}

func (r *recorder) byShape(s Shape) []Part {
	var out []Part
	for _, p := range r.parts {
		if p.Shape == s {
			out = append(out, p)
		}
	}
	return out
}

func requireMat4(t *testing.T, want, got math.Mat4) {
	t.Helper()
	require.True(t, want.ApproxEqual(got, tol), "want %v\ngot  %v", want, got)
}

func requireVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestNewStateDefaults(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, float32(0.05), s.Speed)
	assert.Equal(t, float32(1), s.ModelScale)
	assert.Equal(t, math.Vec3{X: 0.05}, s.Position)
	assert.Equal(t, math.Vec3{Y: 1}, s.Light)
	assert.Equal(t, DrawFilled, s.DrawMode)
	assert.Equal(t, ColourShaded, s.ColourMode)
	assert.True(t, s.Attenuation)
	assert.Zero(t, s.MotorAngle)
	assert.Equal(t, math.Vec3{Z: 4}, s.Camera.Eye)
	assert.Equal(t, float32(60), s.Camera.FovY)
}

func TestNewStateRejectsUnknownModes(t *testing.T) {
	cfg := config.Default()

	sc := cfg.Scene
	sc.DrawMode = "wireframe"
	_, err := NewState(sc, cfg.Camera)
	require.Error(t, err)

	sc = cfg.Scene
	sc.ColourMode = "rainbow"
	_, err = NewState(sc, cfg.Camera)
	require.Error(t, err)
}

func TestParseModes(t *testing.T) {
	for _, m := range []DrawMode{DrawPoints, DrawLines, DrawFilled} {
		got, err := ParseDrawMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	cm, err := ParseColourMode("flat")
	require.NoError(t, err)
	assert.Equal(t, ColourFlat, cm)
	assert.Equal(t, "DrawMode(7)", DrawMode(7).String())
}

func TestRenderPartCounts(t *testing.T) {
	d := NewDriver(DefaultState())
	r := &recorder{}
	d.Render(r)

	assert.Equal(t, 1, r.frames)
	assert.Equal(t, 1, r.ended)
	require.Len(t, r.parts, PartsPerFrame)
	assert.Equal(t, 59, PartsPerFrame)

	counts := map[Shape]int{}
	for _, p := range r.parts {
		counts[p.Shape]++
	}
	assert.Equal(t, map[Shape]int{
		ShapeCube:        38,
		ShapeSphere:      1,
		ShapeStandoff:    8,
		ShapeMotorBell:   4,
		ShapeMotorShaft:  4,
		ShapeMotorStator: 4,
	}, counts)
}

func TestRenderLeavesStackAtIdentity(t *testing.T) {
	s := DefaultState()
	s.AngleX, s.AngleY, s.AngleZ = 10, 20, 30
	s.ModelScale = 1.5
	d := NewDriver(s)

	for i := 0; i < 3; i++ {
		d.Render(&recorder{})
		assert.Equal(t, 1, d.StackDepth())
		requireMat4(t, math.Identity(), d.StackTop())
	}
}

func TestRenderFrameUniforms(t *testing.T) {
	s := DefaultState()
	s.Camera.AngleY = 15
	s.Light = math.Vec3{X: 0.5, Y: 1, Z: -0.25}
	s.ColourMode = ColourFlat
	s.Attenuation = false
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	view := s.Camera.ViewMatrix()
	requireMat4(t, view, r.frame.View)
	requireMat4(t, s.Camera.ProjectionMatrix(), r.frame.Projection)
	assert.Equal(t, ColourFlat, r.frame.ColourMode)
	assert.False(t, r.frame.Attenuation)

	require.Equal(t, 1, r.frame.Lights.Count)
	want := view.MulVec4(s.Light.Vec4(1))
	got := r.frame.Lights.Lights[0].Position
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol)
	}
}

func TestRenderOneLightPerFrame(t *testing.T) {
	d := NewDriver(DefaultState())
	r := &recorder{}
	for i := 0; i < 5; i++ {
		d.Render(r)
		assert.Equal(t, 1, r.frame.Lights.Count)
	}
}

func TestNormalMatrixUsesViewModel(t *testing.T) {
	s := DefaultState()
	s.Camera.AngleX = 25
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	view := r.frame.View
	for _, p := range r.parts {
		assert.Equal(t, math.NormalMatrix(view.Mul(p.Model)), p.Normal, p.Shape.String())
	}
}

func TestMotorCounterAndSpinDirection(t *testing.T) {
	s := DefaultState()
	s.MotorAngle = 10
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	assert.Equal(t, float32(14), s.MotorAngle)

	body := math.Translate(s.Position.X, s.Position.Y, s.Position.Z)
	bells := r.byShape(ShapeMotorBell)
	require.Len(t, bells, 4)
	for i, p := range bells {
		spin := float32(10 + i)
		if i%2 == 0 {
			spin = -spin
		}
		want := body.
			Mul(math.RotateY(math.Radians(-(90*float32(i) + 45)))).
			Mul(math.Translate(0.77, -0.02, 0)).
			Mul(math.RotateY(math.Radians(spin))).
			Mul(math.Scale(0.15, 0.085, 0.15)).
			Mul(math.RotateX(math.Radians(-90)))
		requireMat4(t, want, p.Model)
	}

	d.Render(r)
	assert.Equal(t, float32(18), s.MotorAngle)
}

func TestSpinDirection(t *testing.T) {
	assert.Equal(t, float32(-1), SpinDirection(0))
	assert.Equal(t, float32(1), SpinDirection(1))
	assert.Equal(t, float32(-1), SpinDirection(2))
	assert.Equal(t, float32(1), SpinDirection(3))
}

func TestLightIndicatorIgnoresBodyTransform(t *testing.T) {
	s := DefaultState()
	s.ModelScale = 2
	s.AngleY = 30
	s.Light = math.Vec3{X: 0.3, Y: 1, Z: 0.2}
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	spheres := r.byShape(ShapeSphere)
	require.Len(t, spheres, 1)
	p := spheres[0]
	assert.True(t, p.Material.Emit)
	requireMat4(t, math.Translate(0.3, 1, 0.2).Mul(math.Scale(0.05, 0.05, 0.05)), p.Model)

	for _, other := range r.parts[1:] {
		assert.False(t, other.Material.Emit)
	}
}

func TestStandoffsFollowBody(t *testing.T) {
	s := DefaultState()
	s.ModelScale = 2
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	standoffs := r.byShape(ShapeStandoff)
	require.Len(t, standoffs, 8)
	centre := standoffs[0].Model.TransformPoint(math.Vec3{})
	requireVec3(t, math.Vec3{X: 2 * (0.05 + 0.45), Y: 0, Z: 2 * 0.12}, centre)
	assert.Equal(t, float32(4), standoffs[0].Material.Reflectiveness)
}

func TestPlatesSitAboveAndBelow(t *testing.T) {
	d := NewDriver(DefaultState())
	r := &recorder{}
	d.Render(r)

	lower := r.parts[1].Model.TransformPoint(math.Vec3{})
	upper := r.parts[2].Model.TransformPoint(math.Vec3{})
	requireVec3(t, math.Vec3{X: 0.05, Y: -0.085}, lower)
	requireVec3(t, math.Vec3{X: 0.05, Y: 0.085}, upper)
	assert.Equal(t, frameMaterial, r.parts[1].Material)
}

func TestRenderAdvancesRotation(t *testing.T) {
	s := DefaultState()
	s.AngleIncX, s.AngleIncY, s.AngleIncZ = 1, 2, -0.5
	d := NewDriver(s)
	d.Render(&recorder{})
	d.Render(&recorder{})

	assert.InDelta(t, 2, s.AngleX, tol)
	assert.InDelta(t, 4, s.AngleY, tol)
	assert.InDelta(t, -1, s.AngleZ, tol)
}

func TestPartsCarryDrawMode(t *testing.T) {
	s := DefaultState()
	s.DrawMode = DrawLines
	d := NewDriver(s)
	r := &recorder{}
	d.Render(r)

	for _, p := range r.parts {
		assert.Equal(t, DrawLines, p.Mode)
	}
}

func TestShapeBuild(t *testing.T) {
	for s := ShapeCube; s < ShapeCount; s++ {
		m := s.Build()
		require.NotNil(t, m, s.String())
		assert.NotZero(t, m.TriangleCount(), s.String())
	}
	assert.Nil(t, ShapeCount.Build())
}
