package render

import (
	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
)

// StrandStyle gates optional strand effects
type StrandStyle struct {
	Glow          bool
	EndAccent     bool
	BaseThickness float64
}

// BaseThicknessFor thins strands when the scene is dense
func BaseThicknessFor(strandCount int) float64 {
	if strandCount > parameter.StrandDenseAbove {
		return parameter.StrandBaseThicknessDense
	}
	return parameter.StrandBaseThickness
}

// SegmentWidth returns line width for segment i: base + tension gain + taper toward the free end
func SegmentWidth(s *physics.Strand, i int, base float64) float64 {
	n := float64(s.Segments())
	return base + s.Tension(i)*parameter.StrandTensionGain + (1-float64(i)/n)*parameter.StrandTaper
}

// DrawStrand renders one strand, returns false when culled
func DrawStrand(surf Surface, s *physics.Strand, style StrandStyle) bool {
	if s.Segments() < 1 {
		return false
	}
	width, _ := surf.Size()
	anchor := s.Anchor().Pos
	end := s.FreeEnd().Pos
	if end.X < -parameter.StrandCullMargin || end.X > width+parameter.StrandCullMargin {
		return false
	}

	pal := PaletteFor(s.Color)
	grad := NewLinearGradient(anchor, end,
		ColorStop{Offset: 0, Color: pal.Top},
		ColorStop{Offset: parameter.GradientMidOffset, Color: pal.Middle},
		ColorStop{Offset: 1, Color: pal.Bottom},
	)

	// Glow first so the main stroke lands on top
	if style.Glow {
		glow := Paint{Color: pal.Glow, Alpha: parameter.StrandGlowAlpha, Blur: parameter.StrandGlowBlur}
		strokeSegments(surf, s, style.BaseThickness, glow)
	}
	strokeSegments(surf, s, style.BaseThickness, Paint{Gradient: grad, Alpha: 1})

	if style.EndAccent {
		surf.FillCircle(end.X, end.Y, parameter.StrandAccentSize, Paint{
			Color: pal.Bottom,
			Alpha: 1,
			Blur:  parameter.StrandAccentBlur,
		})
	}
	return true
}

func strokeSegments(surf Surface, s *physics.Strand, base float64, paint Paint) {
	for i := 0; i < s.Segments(); i++ {
		p1 := s.Points[i].Pos
		p2 := s.Points[i+1].Pos
		surf.StrokeLine(p1.X, p1.Y, p2.X, p2.Y, SegmentWidth(s, i, base), paint)
	}
}
