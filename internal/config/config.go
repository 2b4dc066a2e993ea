// Package config handles demo configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShaderConfig  `yaml:"shaders"`
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ShaderConfig points at on-disk shader sources. Empty paths select the
// embedded defaults.
type ShaderConfig struct {
	Vertex    string `yaml:"vertex"`
	Fragment  string `yaml:"fragment"`
	HotReload bool   `yaml:"hot_reload"`
}

// SceneConfig holds the initial scene state.
type SceneConfig struct {
	Speed       float32    `yaml:"speed"`
	ModelScale  float32    `yaml:"model_scale"`
	Position    [3]float32 `yaml:"position,flow"`
	Light       [3]float32 `yaml:"light,flow"`
	DrawMode    string     `yaml:"draw_mode"`   // points, lines, filled
	ColourMode  string     `yaml:"colour_mode"` // shaded, flat
	Attenuation bool       `yaml:"attenuation"`
}

// CameraConfig holds camera and projection settings.
type CameraConfig struct {
	EyeDistance float32 `yaml:"eye_distance"`
	FovDegrees  float32 `yaml:"fov_degrees"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the demo's built-in behaviour.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "Position light example",
			Width:   1024,
			Height:  768,
			Backend: BackendSDL,
			VSync:   true,
		},
		Scene: SceneConfig{
			Speed:       0.05,
			ModelScale:  1,
			Position:    [3]float32{0.05, 0, 0},
			Light:       [3]float32{0, 1, 0},
			DrawMode:    "filled",
			ColourMode:  "shaded",
			Attenuation: true,
		},
		Camera: CameraConfig{
			EyeDistance: 4,
			FovDegrees:  60,
			Near:        0.1,
			Far:         100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
