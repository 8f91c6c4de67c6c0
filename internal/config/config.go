package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the demo reads at startup.
type Settings struct {
	Screen ScreenSettings `yaml:"screen"`
	Assets AssetSettings  `yaml:"assets"`
	Input  InputSettings  `yaml:"input"`

	// FPSLimit caps the host loop; 0 means uncapped.
	FPSLimit int `yaml:"fps_limit"`
	// SlowFrameMillis is the frame time above which the host logs a profile.
	SlowFrameMillis int `yaml:"slow_frame_ms"`
}

// ScreenSettings describes the window and the projection clip planes.
type ScreenSettings struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	VSync      bool    `yaml:"vsync"`
	FullScreen bool    `yaml:"fullscreen"`
	Depth      float32 `yaml:"depth"`
	Near       float32 `yaml:"near"`
}

// AssetSettings names the files loaded during initialization.
type AssetSettings struct {
	Model          string `yaml:"model"`
	Texture        string `yaml:"texture"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
}

// InputSettings scales raw input into per-frame camera deltas.
type InputSettings struct {
	ZoomStep         float32 `yaml:"zoom_step"`
	OrbitStep        float32 `yaml:"orbit_step"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	ScrollZoom       float32 `yaml:"scroll_zoom"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Screen: ScreenSettings{
			Width:      900,
			Height:     600,
			Title:      "litsphere",
			VSync:      true,
			FullScreen: false,
			Depth:      1000.0,
			Near:       0.1,
		},
		Assets: AssetSettings{
			Model:          "assets/models/sphere.txt",
			Texture:        "assets/textures/seafloor.bmp",
			VertexShader:   "assets/shaders/light/light.vert",
			FragmentShader: "assets/shaders/light/light.frag",
		},
		Input: InputSettings{
			ZoomStep:         0.002,
			OrbitStep:        0.02,
			MouseSensitivity: 0.005,
			ScrollZoom:       0.01,
		},
		FPSLimit:        120,
		SlowFrameMillis: 16,
	}
}

// Load reads a YAML settings file. Keys missing from the file keep their
// default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("could not read config file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("could not decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the renderer cannot start with and clamps the
// tunables that only need to stay in a sane range.
func (s *Settings) Validate() error {
	var errs []error
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height))
	}
	if s.Screen.Near <= 0 {
		errs = append(errs, fmt.Errorf("near plane must be positive, got %v", s.Screen.Near))
	}
	if s.Screen.Depth <= s.Screen.Near {
		errs = append(errs, fmt.Errorf("depth %v must be greater than near plane %v", s.Screen.Depth, s.Screen.Near))
	}
	for name, path := range map[string]string{
		"model":           s.Assets.Model,
		"texture":         s.Assets.Texture,
		"vertex_shader":   s.Assets.VertexShader,
		"fragment_shader": s.Assets.FragmentShader,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("assets.%s must not be empty", name))
		}
	}

	// Clamp to reasonable values
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.FPSLimit > 500 {
		s.FPSLimit = 500
	}
	if s.SlowFrameMillis < 1 {
		s.SlowFrameMillis = 1
	}

	return errors.Join(errs...)
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns the process-wide settings.
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide settings.
func SetCurrent(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}

// GetFPSLimit returns the current frame cap (0 = uncapped).
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.FPSLimit
}

// SetFPSLimit sets the frame cap, clamped to [0, 500].
func SetFPSLimit(limit int) {
	mu.Lock()
	defer mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 500 {
		limit = 500
	}

	current.FPSLimit = limit
}
