// Package config loads startup settings: built-in defaults, overlaid by an optional TOML file
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/a-rossetti/spinning-torus/engine"
	"github.com/a-rossetti/spinning-torus/render"
	"github.com/a-rossetti/spinning-torus/vmath"
)

// Settings is everything the program needs at startup, immutable once validated
type Settings struct {
	Render    render.Config
	Animation engine.Config
}

// Default returns the reference constants
func Default() Settings {
	return Settings{
		Render:    render.DefaultConfig(),
		Animation: engine.DefaultConfig(),
	}
}

// Validate checks both halves of the settings
func (s Settings) Validate() error {
	if err := s.Render.Validate(); err != nil {
		return err
	}
	return s.Animation.Validate()
}

// TOML layout; sections mirror the pipeline stages
type fileConfig struct {
	Screen    screenSection    `toml:"screen"`
	Geometry  geometrySection  `toml:"geometry"`
	Camera    cameraSection    `toml:"camera"`
	Light     lightSection     `toml:"light"`
	Shading   shadingSection   `toml:"shading"`
	Animation animationSection `toml:"animation"`
}

type screenSection struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	YScale float64 `toml:"y_scale"`
}

type geometrySection struct {
	R1        float64 `toml:"r1"`
	R2        float64 `toml:"r2"`
	ThetaStep float64 `toml:"theta_step"`
	PhiStep   float64 `toml:"phi_step"`
}

type cameraSection struct {
	K2 float64 `toml:"k2"`
}

type lightSection struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

type shadingSection struct {
	Glyphs string `toml:"glyphs"`
}

type animationSection struct {
	DeltaA     float64 `toml:"delta_a"`
	DeltaB     float64 `toml:"delta_b"`
	FrameDelay string  `toml:"frame_delay"`
	StartA     float64 `toml:"start_a"`
	StartB     float64 `toml:"start_b"`
	Frames     int     `toml:"frames"`
}

func toFile(s Settings) fileConfig {
	r, a := s.Render, s.Animation
	return fileConfig{
		Screen:   screenSection{Width: r.Width, Height: r.Height, YScale: r.YScale},
		Geometry: geometrySection{R1: r.R1, R2: r.R2, ThetaStep: r.ThetaStep, PhiStep: r.PhiStep},
		Camera:   cameraSection{K2: r.K2},
		Light:    lightSection{X: r.Light.X, Y: r.Light.Y, Z: r.Light.Z},
		Shading:  shadingSection{Glyphs: r.Glyphs},
		Animation: animationSection{
			DeltaA:     a.DeltaA,
			DeltaB:     a.DeltaB,
			FrameDelay: a.FrameDelay.String(),
			StartA:     a.StartA,
			StartB:     a.StartB,
			Frames:     a.MaxFrames,
		},
	}
}

func (f fileConfig) settings() (Settings, error) {
	delay, err := time.ParseDuration(f.Animation.FrameDelay)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: animation.frame_delay: %v", render.ErrInvalidConfig, err)
	}
	return Settings{
		Render: render.Config{
			Width:     f.Screen.Width,
			Height:    f.Screen.Height,
			R1:        f.Geometry.R1,
			R2:        f.Geometry.R2,
			ThetaStep: f.Geometry.ThetaStep,
			PhiStep:   f.Geometry.PhiStep,
			K2:        f.Camera.K2,
			YScale:    f.Screen.YScale,
			Light:     vmath.Vec3F{X: f.Light.X, Y: f.Light.Y, Z: f.Light.Z},
			Glyphs:    f.Shading.Glyphs,
		},
		Animation: engine.Config{
			DeltaA:     f.Animation.DeltaA,
			DeltaB:     f.Animation.DeltaB,
			FrameDelay: delay,
			StartA:     f.Animation.StartA,
			StartB:     f.Animation.StartB,
			MaxFrames:  f.Animation.Frames,
		},
	}, nil
}

// Parse overlays TOML data on the defaults; keys absent from data keep their default
// Unknown keys are rejected so typos do not silently fall back to defaults
func Parse(data []byte) (Settings, error) {
	fc := toFile(Default())
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return Settings{}, fmt.Errorf("config parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Settings{}, fmt.Errorf("%w: unknown keys: %s", render.ErrInvalidConfig, strings.Join(keys, ", "))
	}

	s, err := fc.settings()
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads and parses the file at path; an empty path yields the defaults
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config read: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
