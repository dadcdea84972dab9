package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/a-rossetti/spinning-torus/render"
)

// Config controls animation timing
type Config struct {
	// Per-frame orientation increments (radians)
	DeltaA float64
	DeltaB float64

	// Sleep after each presented frame
	FrameDelay time.Duration

	// Orientation of the first frame
	StartA float64
	StartB float64

	// Stop after this many frames; 0 runs until interrupted
	MaxFrames int
}

// DefaultConfig returns A += 0.04, B += 0.02 every ~30ms, unbounded
func DefaultConfig() Config {
	return Config{
		DeltaA:     0.04,
		DeltaB:     0.02,
		FrameDelay: 30 * time.Millisecond,
	}
}

// Validate rejects negative timing and non-finite angles
func (c Config) Validate() error {
	if c.FrameDelay < 0 {
		return fmt.Errorf("%w: frame_delay %s must not be negative", render.ErrInvalidConfig, c.FrameDelay)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("%w: frames %d must not be negative", render.ErrInvalidConfig, c.MaxFrames)
	}
	for name, v := range map[string]float64{
		"delta_a": c.DeltaA,
		"delta_b": c.DeltaB,
		"start_a": c.StartA,
		"start_b": c.StartB,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%g must be finite", render.ErrInvalidConfig, name, v)
		}
	}
	return nil
}
