package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/engine/input"
	"github.com/Faultbox/poslight/internal/logger"
)

// glfwWindow wraps a GLFW window. GLFW delivers events through callbacks,
// which are buffered here until PollEvents hands them on.
type glfwWindow struct {
	config  Config
	win     *glfw.Window
	pending []input.Event
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{
		config:  cfg,
		win:     win,
		pending: make([]input.Event, 0, 16),
	}
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	if k == input.KeyUnknown {
		return
	}
	a := input.Press
	switch action {
	case glfw.Repeat:
		a = input.Repeat
	case glfw.Release:
		a = input.Release
	}
	w.pending = append(w.pending, input.KeyEvent(k, a))
}

func (w *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, input.ResizeEvent(width, height))
}

// glfwKey maps a GLFW key to a Key. GLFW printable keys are their
// upper-case ASCII values.
func glfwKey(key glfw.Key) input.Key {
	if key == glfw.KeyEscape {
		return input.KeyEscape
	}
	if key > 0 && key < 128 {
		return input.FromASCII(rune(key))
	}
	return input.KeyUnknown
}

// PollEvents runs GLFW's event processing and forwards what the callbacks
// collected.
func (w *glfwWindow) PollEvents(q *input.Queue) {
	glfw.PollEvents()
	for _, e := range w.pending {
		q.Push(e)
	}
	w.pending = w.pending[:0]
	if w.win.ShouldClose() {
		q.Push(input.Event{Type: input.EventQuit})
	}
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// GetSize returns the framebuffer size.
func (w *glfwWindow) GetSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	w.win.Destroy()
	glfw.Terminate()
}
