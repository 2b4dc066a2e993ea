// Package app wires the window, renderer and scene together and runs the
// main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/config"
	"github.com/Faultbox/poslight/internal/engine/input"
	"github.com/Faultbox/poslight/internal/engine/renderer"
	"github.com/Faultbox/poslight/internal/engine/shader/glsl"
	"github.com/Faultbox/poslight/internal/engine/window"
	"github.com/Faultbox/poslight/internal/logger"
	"github.com/Faultbox/poslight/internal/scene"
)

// App is the running demo.
type App struct {
	config   *config.Config
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	events   *input.Queue
	state    *scene.State
	driver   *scene.Driver
	watcher  *glsl.Watcher
}

// New creates the window, GL resources and initial scene state.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	state, err := scene.NewState(cfg.Scene, cfg.Camera)
	if err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	a := &App{
		config: cfg,
		events: input.NewQueue(),
		state:  state,
		driver: scene.NewDriver(state),
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Backend:    cfg.Window.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:          width,
		Height:         height,
		VertexShader:   cfg.Shaders.Vertex,
		FragmentShader: cfg.Shaders.Fragment,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.state.Resize(width, height)

	if cfg.Shaders.HotReload {
		a.startWatcher()
	}

	logger.Info("initialized successfully")
	return a, nil
}

func (a *App) startWatcher() {
	sc := a.config.Shaders
	if sc.Vertex == "" || sc.Fragment == "" {
		logger.Warn("shader hot reload needs vertex and fragment paths; using embedded shaders")
		return
	}
	w, err := glsl.Watch(sc.Vertex, sc.Fragment)
	if err != nil {
		logger.Warn("shader hot reload disabled", zap.Error(err))
		return
	}
	a.watcher = w
	logger.Info("watching shaders", zap.String("vertex", sc.Vertex), zap.String("fragment", sc.Fragment))
}

// Run starts the main loop and returns when the window closes or Escape is
// pressed.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		a.window.PollEvents(a.events)
		for _, ev := range a.events.Events() {
			if ev.Type == input.EventWindowResize {
				a.renderer.Resize(ev.Width, ev.Height)
			}
			if a.state.HandleEvent(ev) {
				a.running = false
			}
		}
		a.events.Clear()
		if !a.running {
			break
		}

		if a.watcher != nil && a.watcher.Changed() {
			// Errors are logged by the renderer; the old program stays.
			_ = a.renderer.ReloadShaders()
		}

		a.driver.Render(a.renderer)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases everything New created.
func (a *App) Close() {
	logger.Info("closing")

	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing shader watcher", zap.Error(err))
		}
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
