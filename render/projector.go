package render

import (
	"github.com/a-rossetti/spinning-torus/vmath"
)

// Projector maps rotated points to character cells with a perspective divide
type Projector struct {
	k1, k2 float64
	cx, cy float64
	yScale float64
}

// NewProjector derives K1 and the screen center from cfg
func NewProjector(cfg Config) Projector {
	return Projector{
		k1:     cfg.K1(),
		k2:     cfg.K2,
		cx:     float64(cfg.CenterX()),
		cy:     float64(cfg.CenterY()),
		yScale: cfg.YScale,
	}
}

// ProjectF returns the unrounded screen position of p
// p.Z is the depth after the first rotation only (z'), not a fully rotated z
func (p Projector) ProjectF(v vmath.Vec3F) (sx, sy float64) {
	sx = p.cx + p.k1*v.X/(v.Z+p.k2)
	sy = p.cy - p.k1*v.Y/(v.Z+p.k2)*p.yScale
	return sx, sy
}

// Project truncates ProjectF toward zero; values in (-1, 0) land on cell 0
func (p Projector) Project(v vmath.Vec3F) (x, y int) {
	sx, sy := p.ProjectF(v)
	return int(sx), int(sy)
}
