package render

import (
	"fmt"
	"math"

	"github.com/a-rossetti/spinning-torus/vmath"
)

// Sample is one surface point carried through the pipeline
// Rotated.Z is z', the depth after the first rotation; the second rotation does not touch it
type Sample struct {
	Position      vmath.Vec3F
	Normal        vmath.Vec3F
	Rotated       vmath.Vec3F
	RotatedNormal vmath.Vec3F
	X, Y          int
	Luminance     float64
}

// Pipeline runs sample → rotate → project → shade → depth-test for a whole frame
// Not safe for concurrent use; Render reuses one frame
type Pipeline struct {
	cfg       Config
	torus     Torus
	projector Projector
	shader    Shader
	frame     *Frame
}

// NewPipeline validates cfg and precomputes projection and lighting constants
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{
		cfg:       cfg,
		torus:     Torus{R1: cfg.R1, R2: cfg.R2},
		projector: NewProjector(cfg),
		shader:    NewShader(cfg.Light, cfg.Glyphs),
		frame:     NewFrame(cfg.Width, cfg.Height),
	}, nil
}

// Config returns the validated configuration
func (p *Pipeline) Config() Config { return p.cfg }

// Shader exposes the glyph mapping in use
func (p *Pipeline) Shader() Shader { return p.shader }

// Projector exposes the projection in use
func (p *Pipeline) Projector() Projector { return p.projector }

// Sample evaluates a single (theta, phi) at orientation (a, b)
func (p *Pipeline) Sample(theta, phi, a, b float64) Sample {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return p.sample(sinT, cosT, sinP, cosP, vmath.NewRotor(vmath.WrapAngle(a)), vmath.NewRotor(vmath.WrapAngle(b)))
}

func (p *Pipeline) sample(sinT, cosT, sinP, cosP float64, ra, rb vmath.Rotor) Sample {
	pos, normal := p.torus.at(sinT, cosT, sinP, cosP)
	rotated := vmath.Rotate(pos, ra, rb)
	rotatedNormal := vmath.Rotate(normal, ra, rb)
	x, y := p.projector.Project(rotated)
	return Sample{
		Position:      pos,
		Normal:        normal,
		Rotated:       rotated,
		RotatedNormal: rotatedNormal,
		X:             x,
		Y:             y,
		Luminance:     p.shader.Luminance(rotatedNormal),
	}
}

// Render draws the torus at orientation (a, b) into the pipeline's frame and returns it
// The returned frame is overwritten by the next call; Clone it to keep it
func (p *Pipeline) Render(a, b float64) *Frame {
	ra := vmath.NewRotor(vmath.WrapAngle(a))
	rb := vmath.NewRotor(vmath.WrapAngle(b))

	f := p.frame
	f.Reset()

	// theta walks the tube, phi the ring; phi is finer since it sweeps the larger radius
	for theta := 0.0; theta < vmath.TwoPi; theta += p.cfg.ThetaStep {
		sinT, cosT := math.Sincos(theta)
		for phi := 0.0; phi < vmath.TwoPi; phi += p.cfg.PhiStep {
			sinP, cosP := math.Sincos(phi)
			s := p.sample(sinT, cosT, sinP, cosP, ra, rb)
			f.Plot(s.X, s.Y, s.Rotated.Z, p.shader.GlyphFor(s.Luminance))
		}
	}
	return f
}
