package render

import (
	"math"

	"github.com/a-rossetti/spinning-torus/vmath"
)

// Torus is the parametric surface: theta walks the tube cross-section, phi walks the ring
type Torus struct {
	R1 float64 // tube radius
	R2 float64 // ring radius
}

// Point returns the surface position and (unit) normal at (theta, phi)
func (t Torus) Point(theta, phi float64) (pos, normal vmath.Vec3F) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	return t.at(sinT, cosT, sinP, cosP)
}

// at is Point with trig hoisted out of the sweep
func (t Torus) at(sinT, cosT, sinP, cosP float64) (pos, normal vmath.Vec3F) {
	ring := t.R2 + t.R1*cosT
	pos = vmath.Vec3F{
		X: ring * cosP,
		Y: ring * sinP,
		Z: t.R1 * sinT,
	}
	normal = vmath.Vec3F{
		X: cosP * cosT,
		Y: sinP * cosT,
		Z: sinT,
	}
	return pos, normal
}
