package vmath

import (
	"math"
)

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// Rotor caches sin/cos of one rotation angle so a sweep evaluates trig once per frame
type Rotor struct {
	Sin, Cos float64
}

// NewRotor precomputes the sine and cosine of angle
func NewRotor(angle float64) Rotor {
	s, c := math.Sincos(angle)
	return Rotor{Sin: s, Cos: c}
}

// RotateY rotates v about the Y axis; Y is carried through unchanged
//
//	x' =  x·cos + z·sin
//	z' = -x·sin + z·cos
func RotateY(v Vec3F, r Rotor) Vec3F {
	return Vec3F{
		X: v.X*r.Cos + v.Z*r.Sin,
		Y: v.Y,
		Z: -v.X*r.Sin + v.Z*r.Cos,
	}
}

// RotateZ rotates v about the Z axis; Z is carried through unchanged
//
//	x'' = x'·cos - y·sin
//	y'' = x'·sin + y·cos
func RotateZ(v Vec3F, r Rotor) Vec3F {
	return Vec3F{
		X: v.X*r.Cos - v.Y*r.Sin,
		Y: v.X*r.Sin + v.Y*r.Cos,
		Z: v.Z,
	}
}

// Rotate applies RotateY by a, then RotateZ by b on the result
// The two steps are never fused into a single matrix; the intermediate
// Z (depth after the first rotation) is returned as the Z of the result
// because RotateZ leaves it untouched
func Rotate(v Vec3F, a, b Rotor) Vec3F {
	return RotateZ(RotateY(v, a), b)
}

// WrapAngle reduces angle into [0, 2π)
func WrapAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	return angle
}
