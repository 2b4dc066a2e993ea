// Package glsl provides the embedded shader sources and loads replacements
// from disk.
package glsl

import (
	_ "embed"
	"fmt"
	"os"
)

// VertexShader is the default Gouraud vertex stage.
//
//go:embed poslight.vert
var VertexShader string

// FragmentShader is the default fragment stage.
//
//go:embed poslight.frag
var FragmentShader string

// Sources is a vertex/fragment pair and where each came from. Empty paths
// mean the embedded source.
type Sources struct {
	Vertex       string
	Fragment     string
	VertexPath   string
	FragmentPath string
}

// Default returns the embedded sources.
func Default() Sources {
	return Sources{
		Vertex:   VertexShader,
		Fragment: FragmentShader,
	}
}

// FileError reports a shader source that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read shader %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Load reads both stages from disk. When both paths are empty it returns the
// embedded defaults.
func Load(vertexPath, fragmentPath string) (Sources, error) {
	if vertexPath == "" && fragmentPath == "" {
		return Default(), nil
	}

	vert, err := os.ReadFile(vertexPath)
	if err != nil {
		return Sources{}, &FileError{Path: vertexPath, Err: err}
	}
	frag, err := os.ReadFile(fragmentPath)
	if err != nil {
		return Sources{}, &FileError{Path: fragmentPath, Err: err}
	}

	return Sources{
		Vertex:       string(vert),
		Fragment:     string(frag),
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
	}, nil
}
