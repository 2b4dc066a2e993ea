// Package window creates the OS window and OpenGL context and turns native
// events into input events. SDL2 is the default backend; GLFW is available
// as an alternative.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/poslight/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Window is an OS window with a current OpenGL 4.1 core context.
type Window interface {
	// PollEvents appends pending events to q without blocking.
	PollEvents(q *input.Queue)
	SwapBuffers()
	// GetSize returns the drawable size in pixels.
	GetSize() (int, int)
	Close()
}

// New creates a window using cfg.Backend. An empty backend selects SDL.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
