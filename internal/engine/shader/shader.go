// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/poslight/internal/engine/shader/glsl"
)

// Error describes a shader that could not be loaded, compiled or linked.
// Stage is "load", "vertex", "fragment" or "link".
type Error struct {
	Stage string
	Path  string
	Log   string
	Err   error
}

func (e *Error) Error() string {
	where := e.Stage
	if e.Path != "" {
		where += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("shader %s: %v", where, e.Err)
	}
	return fmt.Sprintf("shader %s: %s", where, e.Log)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// LoadProgram reads the given sources (or the embedded defaults when both
// paths are empty) and builds a program from them.
func LoadProgram(vertexPath, fragmentPath string) (uint32, error) {
	src, err := glsl.Load(vertexPath, fragmentPath)
	if err != nil {
		se := &Error{Stage: "load", Err: err}
		var fe *glsl.FileError
		if errors.As(err, &fe) {
			se.Path = fe.Path
		}
		return 0, se
	}
	return BuildProgram(src)
}

// BuildProgram compiles and links a source pair.
func BuildProgram(src glsl.Sources) (uint32, error) {
	program, err := CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		var se *Error
		if errors.As(err, &se) {
			switch se.Stage {
			case "vertex":
				se.Path = src.VertexPath
			case "fragment":
				se.Path = src.FragmentPath
			}
		}
		return 0, err
	}
	return program, nil
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &Error{Stage: "link", Log: gl.GoStr(&log[0])}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &Error{Stage: stage, Log: gl.GoStr(&log[0])}
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is missing or was optimised out. GL ignores writes to -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
