package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
	"github.com/lixenwraith/strands/vmath"
)

// PointerRenderer draws the cursor dot and an interaction ring that eases in while the pointer moves
type PointerRenderer struct {
	spring  harmonica.Spring
	ring    float64
	ringVel float64
}

// NewPointerRenderer creates a renderer whose ring spring is stepped at fps
func NewPointerRenderer(fps int) *PointerRenderer {
	return &PointerRenderer{
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), parameter.PointerRingFrequency, parameter.PointerRingDamping),
	}
}

// RingLevel returns the current ring opacity factor in [0, 1]
func (r *PointerRenderer) RingLevel() float64 {
	return vmath.Saturate(r.ring)
}

// Draw advances the ring spring and draws unless performance is low
func (r *PointerRenderer) Draw(surf Surface, ptr physics.Pointer, lowPerformance bool) {
	target := 0.0
	if ptr.Moving {
		target = 1.0
	}
	r.ring, r.ringVel = r.spring.Update(r.ring, r.ringVel, target)

	if lowPerformance {
		return
	}

	surf.FillCircle(ptr.Pos.X, ptr.Pos.Y, parameter.PointerDotRadius, Paint{
		Color: RGBWhite,
		Alpha: parameter.PointerDotAlpha,
	})

	if level := r.RingLevel(); level > 0.01 {
		surf.StrokeCircle(ptr.Pos.X, ptr.Pos.Y, ptr.Radius, parameter.PointerRingWidth, Paint{
			Color: RGBWhite,
			Alpha: parameter.PointerRingAlpha * level,
		})
	}
}
