package render

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
)

func TestPointerRendererRingEasesIn(t *testing.T) {
	r := NewPointerRenderer(60)
	surf := &recordingSurface{width: 400, height: 400}
	ptr := physics.Pointer{Pos: r2.Vec{X: 200, Y: 200}, Radius: 100, Moving: true}

	r.Draw(surf, ptr, false)
	first := r.RingLevel()
	for i := 0; i < 60; i++ {
		surf.Clear()
		r.Draw(surf, ptr, false)
	}

	if first <= 0 || first >= r.RingLevel() {
		t.Errorf("ring level did not ease in: first=%v later=%v", first, r.RingLevel())
	}
	if r.RingLevel() < 0.9 {
		t.Errorf("ring level after one second = %v, want near 1", r.RingLevel())
	}
	if len(surf.fills) != 1 || len(surf.rings) != 1 {
		t.Fatalf("moving pointer drew %d dots and %d rings, want 1 each", len(surf.fills), len(surf.rings))
	}
	if surf.fills[0].Alpha != parameter.PointerDotAlpha {
		t.Errorf("dot alpha = %v, want %v", surf.fills[0].Alpha, parameter.PointerDotAlpha)
	}
	if a := surf.rings[0].paint.Alpha; a <= 0 || a > parameter.PointerRingAlpha {
		t.Errorf("ring alpha = %v, want within (0, %v]", a, parameter.PointerRingAlpha)
	}
}

func TestPointerRendererRingFadesWhenIdle(t *testing.T) {
	r := NewPointerRenderer(60)
	surf := &recordingSurface{width: 400, height: 400}
	ptr := physics.Pointer{Pos: r2.Vec{X: 200, Y: 200}, Radius: 100, Moving: true}
	for i := 0; i < 60; i++ {
		r.Draw(surf, ptr, false)
	}

	ptr.Moving = false
	for i := 0; i < 120; i++ {
		surf.Clear()
		r.Draw(surf, ptr, false)
	}

	if r.RingLevel() > 0.01 {
		t.Errorf("ring level after idling = %v, want faded", r.RingLevel())
	}
	if len(surf.rings) != 0 {
		t.Errorf("idle pointer drew %d rings", len(surf.rings))
	}
	if len(surf.fills) != 1 {
		t.Errorf("idle pointer drew %d dots, want 1", len(surf.fills))
	}
}

func TestPointerRendererLowPerformance(t *testing.T) {
	r := NewPointerRenderer(60)
	surf := &recordingSurface{width: 400, height: 400}
	ptr := physics.Pointer{Pos: r2.Vec{X: 200, Y: 200}, Radius: 100, Moving: true}

	for i := 0; i < 10; i++ {
		r.Draw(surf, ptr, true)
	}
	if len(surf.fills) != 0 || len(surf.rings) != 0 {
		t.Errorf("low performance drew %d dots and %d rings", len(surf.fills), len(surf.rings))
	}
	// Spring keeps running so the ring is warm when effects return
	if r.RingLevel() <= 0 {
		t.Error("ring spring stalled while effects were gated")
	}
}
