// Package renderer draws the scene's parts with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/engine/lighting"
	"github.com/Faultbox/poslight/internal/engine/primitive"
	"github.com/Faultbox/poslight/internal/engine/shader"
	"github.com/Faultbox/poslight/internal/logger"
	"github.com/Faultbox/poslight/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// Shader sources on disk. Both empty selects the embedded shaders.
	VertexShader   string
	FragmentShader string
}

const pointSize = 3

// Renderer handles all OpenGL rendering. It implements scene.Target.
type Renderer struct {
	config Config

	program  uint32
	uniforms uniforms

	meshes [scene.ShapeCount]gpuMesh

	// current polygon mode, to skip redundant state changes
	mode scene.DrawMode
}

type uniforms struct {
	model           int32
	view            int32
	projection      int32
	normalMatrix    int32
	lightPos        int32
	numLights       int32
	colourMode      int32
	emitMode        int32
	attenuationMode int32
	reflectiveness  int32
	colourOverride  int32
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

var _ scene.Target = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.2, 0.5, 1.0, 1.0)
	gl.PointSize(pointSize)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.LoadProgram(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.setProgram(program)

	for s := scene.Shape(0); s < scene.ShapeCount; s++ {
		r.meshes[s] = uploadMesh(s.Build())
		logger.Debug("mesh uploaded",
			zap.Stringer("shape", s),
			zap.Int32("indices", r.meshes[s].indexCount),
		)
	}

	r.mode = scene.DrawFilled
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for i := range r.meshes {
		m := &r.meshes[i]
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReloadShaders rebuilds the program from disk. On failure the current
// program stays in use.
func (r *Renderer) ReloadShaders() error {
	program, err := shader.LoadProgram(r.config.VertexShader, r.config.FragmentShader)
	if err != nil {
		logger.Warn("shader reload failed, keeping previous program", zap.Error(err))
		return err
	}
	old := r.program
	r.setProgram(program)
	gl.DeleteProgram(old)
	logger.Info("shaders reloaded", zap.Uint32("program", program))
	return nil
}

func (r *Renderer) setProgram(program uint32) {
	r.program = program
	r.uniforms = uniforms{
		model:           shader.GetUniform(program, "model"),
		view:            shader.GetUniform(program, "view"),
		projection:      shader.GetUniform(program, "projection"),
		normalMatrix:    shader.GetUniform(program, "normalMatrix"),
		lightPos:        shader.GetUniform(program, "lightPos"),
		numLights:       shader.GetUniform(program, "numLights"),
		colourMode:      shader.GetUniform(program, "colourMode"),
		emitMode:        shader.GetUniform(program, "emitMode"),
		attenuationMode: shader.GetUniform(program, "attenuationMode"),
		reflectiveness:  shader.GetUniform(program, "reflectiveness"),
		colourOverride:  shader.GetUniform(program, "colourOverride"),
	}
	logger.Debug("shader program created", zap.Uint32("program", program))
}

// BeginFrame clears the framebuffer and uploads the per-frame uniforms.
func (r *Renderer) BeginFrame(f *scene.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	u := &r.uniforms
	gl.Uniform1ui(u.colourMode, uint32(f.ColourMode))
	gl.Uniform1ui(u.attenuationMode, boolToUint(f.Attenuation))
	gl.Uniform1ui(u.emitMode, 0)
	gl.UniformMatrix4fv(u.view, 1, false, f.View.Ptr())
	gl.UniformMatrix4fv(u.projection, 1, false, f.Projection.Ptr())

	positions := f.Lights.Positions()
	gl.Uniform4fv(u.lightPos, lighting.MaxLights, &positions[0])
	gl.Uniform1ui(u.numLights, uint32(f.Lights.Count))

	r.setMode(f.DrawMode)
}

// DrawPart uploads the part's uniforms and draws its mesh.
func (r *Renderer) DrawPart(p scene.Part) {
	u := &r.uniforms
	gl.UniformMatrix4fv(u.model, 1, false, p.Model.Ptr())
	gl.UniformMatrix3fv(u.normalMatrix, 1, false, p.Normal.Ptr())
	gl.Uniform4fv(u.colourOverride, 1, &p.Material.Colour[0])
	gl.Uniform1f(u.reflectiveness, p.Material.Reflectiveness)
	if p.Material.Emit {
		gl.Uniform1ui(u.emitMode, 1)
	}

	r.setMode(p.Mode)

	m := r.meshes[p.Shape]
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)

	if p.Material.Emit {
		gl.Uniform1ui(u.emitMode, 0)
	}
}

// EndFrame unbinds the state used during the frame.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) setMode(m scene.DrawMode) {
	if m == r.mode {
		return
	}
	r.mode = m
	switch m {
	case scene.DrawPoints:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	case scene.DrawLines:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func uploadMesh(mesh *primitive.Mesh) gpuMesh {
	var m gpuMesh
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(primitive.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(mesh.Indices))
	gl.BindVertexArray(0)
	return m
}

func boolToUint(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
