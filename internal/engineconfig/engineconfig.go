package engineconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
)

// Path is the default preferences file, relative to the process working directory.
const Path = "config/engine.json"

// Prefs holds engine preferences (debug overlays, window, physics tuning). Persisted across runs.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	ShowStats    bool   `json:"show_stats"`
	TargetFPS    int    `json:"target_fps"`
	Title        string `json:"title"`
	LogPath      string `json:"log_path"`
	Muted        bool   `json:"muted"`

	// Font is an optional console font looked up under assets/fonts (e.g. "Fira Mono").
	Font         string `json:"font,omitempty"`
	// PrototypeDir optionally holds YAML prototypes that replace the built-in ones.
	PrototypeDir string `json:"prototype_dir,omitempty"`

	Gravity     float32 `json:"gravity"`
	RelaxPasses int     `json:"relax_passes"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
}

// Default returns default preferences: overlays off, 60 FPS, an 800x600 world with the
// standard gravity and five relaxation passes.
func Default() Prefs {
	return Prefs{
		TargetFPS:   60,
		Title:       "jelly paddle",
		LogPath:     "logs/jelly.txt",
		Gravity:     physics.DefaultGravity,
		RelaxPasses: physics.DefaultRelaxPasses,
		Width:       physics.DefaultWidth,
		Height:      physics.DefaultHeight,
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns Default() and
// does not create a file. Fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables that override the stored preferences.
const (
	EnvGravity     = "JELLY_GRAVITY"
	EnvRelaxPasses = "JELLY_RELAX_PASSES"
	EnvTargetFPS   = "JELLY_TARGET_FPS"
	EnvShowFPS     = "JELLY_SHOW_FPS"
	EnvLogPath     = "JELLY_LOG_PATH"
)

// ApplyEnv returns p with any JELLY_* variables applied. A malformed value is an error naming the variable.
func ApplyEnv(p Prefs) (Prefs, error) {
	if v, ok := os.LookupEnv(EnvGravity); ok {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvGravity, err)
		}
		p.Gravity = float32(f)
	}
	if v, ok := os.LookupEnv(EnvRelaxPasses); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvRelaxPasses, err)
		}
		p.RelaxPasses = n
	}
	if v, ok := os.LookupEnv(EnvTargetFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvTargetFPS, err)
		}
		p.TargetFPS = n
	}
	if v, ok := os.LookupEnv(EnvShowFPS); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvShowFPS, err)
		}
		p.ShowFPS = b
	}
	if v, ok := os.LookupEnv(EnvLogPath); ok && v != "" {
		p.LogPath = v
	}
	return p, nil
}

// Physics maps the preferences onto a world configuration.
func (p Prefs) Physics() physics.Config {
	return physics.Config{
		Gravity:     p.Gravity,
		Bounds:      physics.AABB{Max: maths.Vec2{p.Width, p.Height}},
		RelaxPasses: p.RelaxPasses,
	}
}
