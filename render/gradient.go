package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/vmath"
)

// ColorStop is a gradient key color at an offset in [0, 1]
type ColorStop struct {
	Offset float64
	Color  RGB
}

// LinearGradient maps positions to colors along the From→To axis
// Stops must be sorted by offset; positions beyond the axis take the end colors
type LinearGradient struct {
	From  r2.Vec
	To    r2.Vec
	Stops []ColorStop
}

// NewLinearGradient creates a gradient between two points
func NewLinearGradient(from, to r2.Vec, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{From: from, To: to, Stops: stops}
}

// At returns the gradient color at (x, y)
func (g *LinearGradient) At(x, y float64) RGB {
	if len(g.Stops) == 0 {
		return RGBBlack
	}
	t := vmath.Saturate(vmath.ProjectT(g.From, g.To, r2.Vec{X: x, Y: y}))
	return g.AtOffset(t)
}

// AtOffset returns the gradient color at axis parameter t
func (g *LinearGradient) AtOffset(t float64) RGB {
	if len(g.Stops) == 0 {
		return RGBBlack
	}
	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		next := g.Stops[i]
		if t <= next.Offset {
			prev := g.Stops[i-1]
			span := next.Offset - prev.Offset
			if span <= 0 {
				return next.Color
			}
			return Lerp(prev.Color, next.Color, (t-prev.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}
