package engine

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/physics"
	"github.com/lixenwraith/strands/vmath"
)

// PointerState tracks the cursor in surface coordinates
// Active stays false until the first sample; Moving decays after the idle timeout
type PointerState struct {
	Pos    r2.Vec
	Last   r2.Vec
	Vel    r2.Vec
	Radius float64
	Moving bool
	Active bool

	idleTimeout time.Duration
	lastMove    time.Duration
}

// NewPointerState creates an inactive pointer
func NewPointerState(radius float64, idleTimeout time.Duration) PointerState {
	return PointerState{Radius: radius, idleTimeout: idleTimeout}
}

// Move records a pointer sample; velocity is the delta from the previous sample
// Non-finite samples are dropped
func (p *PointerState) Move(x, y float64, ts time.Duration) {
	pos := r2.Vec{X: x, Y: y}
	if !vmath.IsFinite(pos) {
		return
	}
	if p.Active {
		p.Vel = r2.Sub(pos, p.Last)
	}
	p.Last = pos
	p.Pos = pos
	p.Active = true
	p.Moving = true
	p.lastMove = ts
}

// Expire clears motion once no sample has arrived within the idle timeout
func (p *PointerState) Expire(ts time.Duration) {
	if p.Moving && ts-p.lastMove >= p.idleTimeout {
		p.Moving = false
		p.Vel = r2.Vec{}
	}
}

// View returns the physics-facing snapshot
func (p *PointerState) View() physics.Pointer {
	return physics.Pointer{
		Pos:    p.Pos,
		Vel:    p.Vel,
		Radius: p.Radius,
		Moving: p.Moving,
	}
}
