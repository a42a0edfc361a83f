package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1]
func Saturate(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DistanceSq returns squared distance between two points without sqrt
func DistanceSq(a, b r2.Vec) float64 {
	return r2.Norm2(r2.Sub(a, b))
}

// IsFinite reports whether both components are neither NaN nor infinite
func IsFinite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ProjectT returns the parameter of p projected onto segment a→b
// Zero-length segments project to 0
func ProjectT(a, b, p r2.Vec) float64 {
	ab := r2.Sub(b, a)
	lenSq := r2.Norm2(ab)
	if lenSq == 0 {
		return 0
	}
	return r2.Dot(r2.Sub(p, a), ab) / lenSq
}
