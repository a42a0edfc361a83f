package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
)

type strokeCall struct {
	width float64
	paint Paint
}

type recordingSurface struct {
	width, height float64
	lines         []strokeCall
	rings         []strokeCall
	fills         []Paint
}

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }

func (s *recordingSurface) Clear() {
	s.lines, s.rings, s.fills = nil, nil, nil
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, paint Paint) {
	s.lines = append(s.lines, strokeCall{width, paint})
}

func (s *recordingSurface) StrokeCircle(cx, cy, r, width float64, paint Paint) {
	s.rings = append(s.rings, strokeCall{width, paint})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, paint Paint) {
	s.fills = append(s.fills, paint)
}

func TestDrawStrandPasses(t *testing.T) {
	tests := []struct {
		name      string
		style     StrandStyle
		wantLines int
		wantGlow  int
		wantFills int
	}{
		{"plain", StrandStyle{BaseThickness: 2}, 4, 0, 0},
		{"glow", StrandStyle{Glow: true, BaseThickness: 2}, 8, 4, 0},
		{"accent", StrandStyle{EndAccent: true, BaseThickness: 2}, 4, 0, 1},
		{"full", StrandStyle{Glow: true, EndAccent: true, BaseThickness: 2}, 8, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := &recordingSurface{width: 200, height: 200}
			s := physics.NewStrand(100, 80, 4, 1)

			if !DrawStrand(surf, s, tt.style) {
				t.Fatal("visible strand reported as culled")
			}
			if len(surf.lines) != tt.wantLines {
				t.Errorf("lines = %d, want %d", len(surf.lines), tt.wantLines)
			}
			glow := 0
			for _, l := range surf.lines {
				if l.paint.Blur == parameter.StrandGlowBlur {
					glow++
					if l.paint.Color != Palettes[1].Glow || l.paint.Alpha != parameter.StrandGlowAlpha {
						t.Errorf("glow paint = %+v", l.paint)
					}
				}
			}
			if glow != tt.wantGlow {
				t.Errorf("glow lines = %d, want %d", glow, tt.wantGlow)
			}
			if tt.wantGlow > 0 && surf.lines[0].paint.Blur == 0 {
				t.Error("glow pass must precede the main stroke")
			}
			if len(surf.fills) != tt.wantFills {
				t.Errorf("fills = %d, want %d", len(surf.fills), tt.wantFills)
			}
			if tt.wantFills > 0 && surf.fills[0].Color != Palettes[1].Bottom {
				t.Errorf("accent color = %v, want palette bottom", surf.fills[0].Color)
			}
		})
	}
}

func TestDrawStrandMainStrokeGradient(t *testing.T) {
	surf := &recordingSurface{width: 200, height: 200}
	s := physics.NewStrand(100, 80, 4, 0)
	DrawStrand(surf, s, StrandStyle{BaseThickness: 2})

	g := surf.lines[0].paint.Gradient
	if g == nil {
		t.Fatal("main stroke has no gradient")
	}
	pal := Palettes[0]
	if g.At(100, 0) != pal.Top || g.At(100, 40) != pal.Middle || g.At(100, 80) != pal.Bottom {
		t.Errorf("gradient stops do not follow palette top/middle/bottom")
	}
}

func TestDrawStrandCulling(t *testing.T) {
	tests := []struct {
		name    string
		freeX   float64
		visible bool
	}{
		{"inside", 100, true},
		{"left margin", -parameter.StrandCullMargin, true},
		{"past left margin", -parameter.StrandCullMargin - 1, false},
		{"right margin", 200 + parameter.StrandCullMargin, true},
		{"past right margin", 200 + parameter.StrandCullMargin + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := &recordingSurface{width: 200, height: 200}
			s := physics.NewStrand(100, 80, 4, 0)
			s.FreeEnd().Pos.X = tt.freeX

			got := DrawStrand(surf, s, StrandStyle{Glow: true, EndAccent: true, BaseThickness: 2})
			if got != tt.visible {
				t.Errorf("DrawStrand() = %v, want %v", got, tt.visible)
			}
			if !tt.visible && (len(surf.lines) != 0 || len(surf.fills) != 0) {
				t.Errorf("culled strand issued %d lines and %d fills", len(surf.lines), len(surf.fills))
			}
		})
	}
}

func TestSegmentWidth(t *testing.T) {
	s := physics.NewStrand(0, 100, 4, 0)

	// At rest: base plus taper, thickest at the anchor
	if got := SegmentWidth(s, 0, 2); math.Abs(got-3) > 1e-9 {
		t.Errorf("SegmentWidth(0) = %v, want 3", got)
	}
	if got := SegmentWidth(s, 3, 2); math.Abs(got-2.25) > 1e-9 {
		t.Errorf("SegmentWidth(3) = %v, want 2.25", got)
	}

	// Stretch segment 3 by half its rest length
	s.Points[4].Pos.Y += s.RestLength / 2
	if got := SegmentWidth(s, 3, 2); math.Abs(got-3.25) > 1e-9 {
		t.Errorf("stretched SegmentWidth(3) = %v, want 3.25", got)
	}
}

func TestBaseThicknessFor(t *testing.T) {
	if got := BaseThicknessFor(parameter.StrandDenseAbove); got != parameter.StrandBaseThickness {
		t.Errorf("BaseThicknessFor(%d) = %v", parameter.StrandDenseAbove, got)
	}
	if got := BaseThicknessFor(parameter.StrandDenseAbove + 1); got != parameter.StrandBaseThicknessDense {
		t.Errorf("BaseThicknessFor(%d) = %v", parameter.StrandDenseAbove+1, got)
	}
}

func TestDrawStrandOnCanvas(t *testing.T) {
	c := NewCanvas(20, 10, 8, 16)
	s := physics.NewStrand(80, 120, 6, 2)
	if !DrawStrand(c, s, StrandStyle{Glow: true, EndAccent: true, BaseThickness: 2}) {
		t.Fatal("strand culled on canvas")
	}
	anchor := c.Cell(10, 0)
	if anchor.Rune == ' ' {
		t.Fatal("anchor cell empty")
	}
	if !anchor.HasBg {
		t.Error("glow pass left no halo")
	}
	// End accent is drawn last in the palette bottom color
	end := c.Cell(10, 7)
	if end.Rune == ' ' || end.Fg != Palettes[2].Bottom {
		t.Errorf("free end cell = %+v, want accent in %v", end, Palettes[2].Bottom)
	}
}
