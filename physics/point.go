package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/vmath"
)

// Bounds is the simulation rectangle [0, Width] x [0, Height]
type Bounds struct {
	Width, Height float64
}

// Pointer is the read-only pointer view consumed by force application
type Pointer struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Moving bool
}

// Point is a single mass point of a strand
// Prev is recorded on every integration but nothing reads it
type Point struct {
	Pos   r2.Vec
	Prev  r2.Vec
	Vel   r2.Vec
	Force r2.Vec
	Fixed bool
}

// NewPoint creates a point at rest
func NewPoint(x, y float64, fixed bool) Point {
	pos := r2.Vec{X: x, Y: y}
	return Point{Pos: pos, Prev: pos, Fixed: fixed}
}

// Integrate consumes accumulated force, applies friction and gravity, advances position and bounces off bounds
func (p *Point) Integrate(gravity, friction float64, b Bounds) {
	if p.Fixed {
		return
	}

	p.Vel = r2.Add(p.Vel, p.Force)
	p.Force = r2.Vec{}

	p.Vel = r2.Scale(friction, p.Vel)
	p.Vel.Y += gravity

	p.Prev = p.Pos
	p.Pos = r2.Add(p.Pos, p.Vel)

	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X *= parameter.BounceDamping
	} else if p.Pos.X > b.Width {
		p.Pos.X = b.Width
		p.Vel.X *= parameter.BounceDamping
	}

	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y *= parameter.BounceDamping
	} else if p.Pos.Y > b.Height {
		p.Pos.Y = b.Height
		p.Vel.Y *= parameter.BounceDamping
	}
}

// ApplyPointerForce accumulates a push away from the pointer, biased along pointer velocity while it moves
// Velocity is not touched; the force is consumed by the next Integrate
func (p *Point) ApplyPointerForce(ptr Pointer, multiplier float64) {
	if p.Fixed {
		return
	}

	distSq := vmath.DistanceSq(p.Pos, ptr.Pos)
	if distSq >= ptr.Radius*ptr.Radius {
		return
	}
	d := r2.Sub(p.Pos, ptr.Pos)

	dist := math.Sqrt(distSq)
	force := (ptr.Radius - dist) / ptr.Radius * multiplier

	// Coincident with the pointer: no radial direction, drag bias still applies
	var n r2.Vec
	if dist > parameter.PointerDirectionEpsilon {
		n = r2.Scale(1/dist, d)
	}

	if ptr.Moving {
		push := r2.Scale(force*parameter.PointerMovingGain, n)
		drag := r2.Scale(parameter.PointerVelocityBias, ptr.Vel)
		p.Force = r2.Add(p.Force, r2.Add(push, drag))
		return
	}
	p.Force = r2.Add(p.Force, r2.Scale(force*parameter.PointerStaticGain, n))
}

// clampTo pulls the position back inside bounds without touching velocity
func (p *Point) clampTo(b Bounds) {
	p.Pos.X = vmath.Clamp(p.Pos.X, 0, b.Width)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, 0, b.Height)
}
