package scene

import (
	"fmt"

	"github.com/Faultbox/poslight/internal/engine/primitive"
	"github.com/Faultbox/poslight/pkg/math"
)

// Shape identifies one of the shared meshes.
type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapeStandoff
	ShapeMotorBell
	ShapeMotorStator
	ShapeMotorShaft

	ShapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapeStandoff:
		return "standoff"
	case ShapeMotorBell:
		return "motor-bell"
	case ShapeMotorStator:
		return "motor-stator"
	case ShapeMotorShaft:
		return "motor-shaft"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Mesh resolution and tube inner radii.
const (
	tubeSegments  = 40
	sphereLats    = 20
	sphereLongs   = 20
	standoffInner = 0.1
	bellInner     = 0.1
	statorInner   = 0.85
	shaftInner    = 0.7
)

// Build generates the mesh for s. Returns nil for an unknown shape.
func (s Shape) Build() *primitive.Mesh {
	switch s {
	case ShapeCube:
		return primitive.Cube()
	case ShapeSphere:
		return primitive.Sphere(sphereLats, sphereLongs)
	case ShapeStandoff:
		return primitive.Tube(tubeSegments, standoffInner)
	case ShapeMotorBell:
		return primitive.Tube(tubeSegments, bellInner)
	case ShapeMotorStator:
		return primitive.Tube(tubeSegments, statorInner)
	case ShapeMotorShaft:
		return primitive.Tube(tubeSegments, shaftInner)
	default:
		return nil
	}
}

// Material is the per-part surface description.
type Material struct {
	Colour         math.Vec4
	Reflectiveness float32
	Emit           bool
}

var (
	frameMaterial    = Material{Colour: math.Vec4{0.2, 0.2, 0.2, 1}, Reflectiveness: 0}
	motorMaterial    = Material{Colour: math.Vec4{0.6, 0.6, 0.6, 1}, Reflectiveness: 10}
	statorMaterial   = Material{Colour: math.Vec4{0.88, 0.44, 0, 1}, Reflectiveness: 2}
	standoffMaterial = Material{Colour: math.Vec4{1, 0, 0, 1}, Reflectiveness: 4}
	lightMaterial    = Material{Colour: math.Vec4{1, 1, 0.8, 1}, Emit: true}
)

// Part is a single draw: which mesh, where, and how it looks.
type Part struct {
	Shape    Shape
	Model    math.Mat4
	Normal   math.Mat3
	Material Material
	Mode     DrawMode
}

// Drone dimensions. Scales are local to the part's own mesh.
var (
	plateScale    = math.Vec3{X: 1, Y: 0.015, Z: 0.3}
	armScale      = math.Vec3{X: 0.8, Y: 0.03, Z: 0.15}
	standoffScale = math.Vec3{X: 0.025, Y: 0.17, Z: 0.025}
	bellScale     = math.Vec3{X: 0.15, Y: 0.085, Z: 0.15}
	statorScale   = math.Vec3{X: 0.125, Y: 0.08, Z: 0.125}
	shaftScale    = math.Vec3{X: 0.025, Y: 0.085, Z: 0.025}
	strutScale    = math.Vec3{X: 0.011, Y: 0.011, Z: 0.14}

	standoffPositions = [8]math.Vec3{
		{X: 0.45, Z: 0.12}, {X: 0.2, Z: 0.12}, {X: -0.2, Z: 0.12}, {X: -0.45, Z: 0.12},
		{X: 0.45, Z: -0.12}, {X: 0.2, Z: -0.12}, {X: -0.2, Z: -0.12}, {X: -0.45, Z: -0.12},
	}
)

const (
	plateOffset  = 0.085
	lightScale   = 0.05
	strutsPerArm = 3
	motorCount   = 4
	armCount     = 4
)

// PartsPerFrame is the number of draws one Render issues.
const PartsPerFrame = 1 + // light
	2 + // plates
	armCount +
	motorCount*(strutsPerArm*2+2+2+1) + // struts, shaft and bell, base, stator
	len(standoffPositions)

// SpinDirection returns the sign applied to the spin counter for motor i.
// Neighbouring motors turn in opposite directions.
func SpinDirection(i int) float32 {
	if i%2 == 0 {
		return -1
	}
	return 1
}

// armAngle is the heading of arm or motor i in degrees.
func armAngle(i int) float32 {
	return -(90*float32(i) + 45)
}

func (d *Driver) scale(v math.Vec3) {
	d.stack.Scale(v.X, v.Y, v.Z)
}

// emit hands the current top of the stack to the target.
func (d *Driver) emit(shape Shape, m Material) {
	model := d.stack.Top()
	d.target.DrawPart(Part{
		Shape:    shape,
		Model:    model,
		Normal:   math.NormalMatrix(d.frame.View.Mul(model)),
		Material: m,
		Mode:     d.state.DrawMode,
	})
	d.parts++
}

// drawLight marks the light position with a small emissive sphere. It sits
// outside the body transforms.
func (d *Driver) drawLight() {
	l := d.state.Light
	d.stack.Push()
	{
		d.stack.Translate(l.X, l.Y, l.Z)
		d.stack.ScaleUniform(lightScale)
		d.emit(ShapeSphere, lightMaterial)
	}
	d.stack.Pop()
}

func (d *Driver) drawDrone() {
	s := d.state
	st := d.stack

	st.Push()
	{
		st.ScaleUniform(s.ModelScale)
		st.RotateX(-s.AngleX)
		st.RotateY(-s.AngleY)
		st.RotateZ(-s.AngleZ)

		st.Push()
		{
			st.Translate(s.Position.X, s.Position.Y, s.Position.Z)

			d.drawPlates()
			d.drawArms()
			for i := 0; i < motorCount; i++ {
				d.drawMotor(i)
			}
			d.drawStandoffs()
		}
		st.Pop()
	}
	st.Pop()
}

func (d *Driver) drawPlates() {
	for _, y := range [2]float32{-plateOffset, plateOffset} {
		d.stack.Push()
		{
			d.stack.Translate(0, y, 0)
			d.scale(plateScale)
			d.emit(ShapeCube, frameMaterial)
		}
		d.stack.Pop()
	}
}

func (d *Driver) drawArms() {
	st := d.stack
	for i := 0; i < armCount; i++ {
		st.Push()
		{
			st.RotateY(armAngle(i))
			st.Translate(0.45, -0.1, 0)
			d.scale(armScale)
			d.emit(ShapeCube, frameMaterial)
		}
		st.Pop()
	}
}

// drawMotor draws motor i. The spinning group consumes one step of the
// spin counter.
func (d *Driver) drawMotor(i int) {
	st := d.stack
	st.Push()
	{
		st.RotateY(armAngle(i))
		st.Translate(0.77, -0.02, 0)

		st.Push()
		{
			st.RotateY(SpinDirection(i) * d.state.MotorAngle)
			d.state.MotorAngle++

			d.drawStruts()

			st.Push()
			{
				st.Translate(0, 0.06, 0)
				d.scale(shaftScale)
				st.RotateX(-90)
				d.emit(ShapeMotorShaft, motorMaterial)
			}
			st.Pop()

			st.Push()
			{
				d.scale(bellScale)
				st.RotateX(-90)
				d.emit(ShapeMotorBell, motorMaterial)
			}
			st.Pop()
		}
		st.Pop()

		for _, base := range [2]math.Vec3{{X: 0.12, Y: 0.01, Z: 0.04}, {X: 0.04, Y: 0.01, Z: 0.12}} {
			st.Push()
			{
				st.Translate(0, -0.06, 0)
				d.scale(base)
				d.emit(ShapeCube, motorMaterial)
			}
			st.Pop()
		}

		st.Push()
		{
			st.Translate(0, -0.015, 0)
			d.scale(statorScale)
			st.RotateX(-90)
			d.emit(ShapeMotorStator, statorMaterial)
		}
		st.Pop()
	}
	st.Pop()
}

// drawStruts draws the three strut pairs on top of a motor bell.
func (d *Driver) drawStruts() {
	st := d.stack
	st.Push()
	{
		st.Translate(0, 0.042, 0)
		for j := 0; j < strutsPerArm; j++ {
			st.Push()
			{
				st.RotateY(-120 * float32(j))
				for _, x := range [2]float32{0.015, -0.015} {
					st.Push()
					{
						st.Translate(x, 0, 0)
						d.scale(strutScale)
						d.emit(ShapeCube, motorMaterial)
					}
					st.Pop()
				}
			}
			st.Pop()
		}
	}
	st.Pop()
}

// drawStandoffs draws the posts between the plates. They are nested in the
// body so they follow its scale, rotation and translation.
func (d *Driver) drawStandoffs() {
	st := d.stack
	for _, p := range standoffPositions {
		st.Push()
		{
			st.Translate(p.X, p.Y, p.Z)
			d.scale(standoffScale)
			st.RotateX(-90)
			d.emit(ShapeStandoff, standoffMaterial)
		}
		st.Pop()
	}
}
