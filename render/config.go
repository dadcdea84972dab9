package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/a-rossetti/spinning-torus/vmath"
)

// ErrInvalidConfig classifies every validation failure of the pipeline configuration
var ErrInvalidConfig = errors.New("invalid config")

// DefaultGlyphs is the luminance ramp, dimmest to brightest
const DefaultGlyphs = ".,:;+=xX$&"

// Limits that keep a frame finite in memory and time
const (
	// MaxDimension bounds each screen side
	MaxDimension = 4096

	// MinStep keeps theta += step advancing well above the float spacing near 2π
	MinStep = 1e-4

	// MaxSamples bounds surface samples per frame (default sweep is ~28k)
	MaxSamples = 1 << 22
)

// Config holds screen, geometry, camera and lighting constants
// Built once at startup, read-only afterwards; passed by value into the pipeline
type Config struct {
	Width  int
	Height int

	// Tube (minor) and ring (major) radius
	R1 float64
	R2 float64

	// Sweep step around the tube and around the ring
	ThetaStep float64
	PhiStep   float64

	// Camera distance offset added to depth before the perspective divide
	K2 float64

	// Vertical squash for non-square character cells
	YScale float64

	// Light direction, normalized by NewShader
	Light vmath.Vec3F

	Glyphs string
}

// DefaultConfig returns the reference constants: 80x40, R1=0.8, R2=2, K2=-8
func DefaultConfig() Config {
	return Config{
		Width:     80,
		Height:    40,
		R1:        0.8,
		R2:        2,
		ThetaStep: 0.07,
		PhiStep:   0.02,
		K2:        -8,
		YScale:    0.5,
		Light:     vmath.Vec3F{X: 1, Y: 1, Z: 0.5},
		Glyphs:    DefaultGlyphs,
	}
}

// K1 is the projection scale; places the torus edge (x=R1+R2) 3/8 of the width from center
func (c Config) K1() float64 {
	return float64(c.Width) * c.K2 * 3 / (8 * (c.R1 + c.R2))
}

// Samples estimates the surface samples one frame sweeps
func (c Config) Samples() float64 {
	return math.Ceil(vmath.TwoPi/c.ThetaStep) * math.Ceil(vmath.TwoPi/c.PhiStep)
}

// CenterX is the screen column of the projection origin
func (c Config) CenterX() int { return c.Width / 2 }

// CenterY is the screen row of the projection origin
func (c Config) CenterY() int { return c.Height / 2 }

// Validate checks every constraint the pipeline relies on
// |K2| > R1+R2 keeps z'+K2 away from zero: |z'| never exceeds R1+R2 on the surface
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: screen %dx%d exceeds %d per side", ErrInvalidConfig, c.Width, c.Height, MaxDimension)
	}
	if !(c.R1 > 0) || !(c.R2 > 0) {
		return fmt.Errorf("%w: radii r1=%g r2=%g must be positive", ErrInvalidConfig, c.R1, c.R2)
	}
	if !(c.ThetaStep >= MinStep) || !(c.PhiStep >= MinStep) {
		return fmt.Errorf("%w: steps theta=%g phi=%g must be at least %g", ErrInvalidConfig, c.ThetaStep, c.PhiStep, MinStep)
	}
	if n := c.Samples(); n > MaxSamples {
		return fmt.Errorf("%w: steps theta=%g phi=%g sweep %.0f samples, limit %d", ErrInvalidConfig, c.ThetaStep, c.PhiStep, n, MaxSamples)
	}
	if math.IsNaN(c.K2) || math.Abs(c.K2) <= c.R1+c.R2 {
		return fmt.Errorf("%w: |k2|=%g must exceed r1+r2=%g", ErrInvalidConfig, math.Abs(c.K2), c.R1+c.R2)
	}
	if !(c.YScale > 0) {
		return fmt.Errorf("%w: y_scale=%g must be positive", ErrInvalidConfig, c.YScale)
	}
	if vmath.V3FMagSq(c.Light) == 0 {
		return fmt.Errorf("%w: light direction must be non-zero", ErrInvalidConfig)
	}
	if len(c.Glyphs) == 0 {
		return fmt.Errorf("%w: glyph table is empty", ErrInvalidConfig)
	}
	for i := 0; i < len(c.Glyphs); i++ {
		if g := c.Glyphs[i]; g < 0x20 || g > 0x7e {
			return fmt.Errorf("%w: glyph %q at %d is not printable ASCII", ErrInvalidConfig, g, i)
		}
	}
	return nil
}
