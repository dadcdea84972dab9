package render

import (
	"math"

	"github.com/a-rossetti/spinning-torus/vmath"
)

// Shader turns a rotated normal into a glyph via Lambert-style luminance
type Shader struct {
	light  vmath.Vec3F
	glyphs string
	scale  float64
}

// NewShader normalizes light once and sizes the luminance ramp to glyphs
// A ramp of n glyphs maps [-1, 1] with scale n/2 - 0.01 (4.99 for 10 glyphs)
func NewShader(light vmath.Vec3F, glyphs string) Shader {
	return Shader{
		light:  vmath.V3FNormalize(light),
		glyphs: glyphs,
		scale:  float64(len(glyphs))/2 - 0.01,
	}
}

// Luminance is dot(normal, light); normal is not re-normalized, so the result may leave [-1, 1] slightly
func (s Shader) Luminance(normal vmath.Vec3F) float64 {
	return vmath.V3FDot(normal, s.light)
}

// GlyphIndex maps luminance to a ramp index, clamped to the table
func (s Shader) GlyphIndex(l float64) int {
	idx := int(math.Floor((l + 1) * s.scale))
	if idx < 0 {
		return 0
	}
	if idx >= len(s.glyphs) {
		return len(s.glyphs) - 1
	}
	return idx
}

// GlyphFor returns the ramp glyph for luminance l
func (s Shader) GlyphFor(l float64) byte {
	return s.glyphs[s.GlyphIndex(l)]
}
