package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/parameter"
)

// PointIndex receives non-fixed points as they are integrated
type PointIndex interface {
	Insert(p *Point)
}

// Strand is a chain of points joined by distance constraints, Points[0] is the fixed anchor
// Points is never resized after construction, so point addresses are stable for the strand's lifetime
type Strand struct {
	Points     []Point
	RestLength float64
	Color      int
}

// NewStrand builds a vertical strand hanging from (anchorX, 0)
func NewStrand(anchorX, length float64, segments, color int) *Strand {
	if segments < 1 {
		segments = 1
	}
	s := &Strand{
		Points:     make([]Point, segments+1),
		RestLength: length / float64(segments),
		Color:      color,
	}
	for i := range s.Points {
		y := float64(i) / float64(segments) * length
		s.Points[i] = NewPoint(anchorX, y, i == 0)
	}
	return s
}

// SegmentsFor derives segment count from strand count and quality reduction, floored at SegmentsMin
func SegmentsFor(strandCount int, reduction float64) int {
	base := parameter.SegmentsBase
	switch {
	case strandCount > parameter.SegmentsLowAbove:
		base = parameter.SegmentsLow
	case strandCount > parameter.SegmentsMediumAbove:
		base = parameter.SegmentsMedium
	}
	return max(parameter.SegmentsMin, int(math.Floor(float64(base)*reduction)))
}

// Segments returns the number of constraints in the chain
func (s *Strand) Segments() int {
	return len(s.Points) - 1
}

// Anchor returns the fixed top point
func (s *Strand) Anchor() *Point {
	return &s.Points[0]
}

// FreeEnd returns the last point of the chain
func (s *Strand) FreeEnd() *Point {
	return &s.Points[len(s.Points)-1]
}

// Integrate advances every point and indexes each non-fixed point right after it moves
func (s *Strand) Integrate(gravity, friction float64, b Bounds, index PointIndex) {
	for i := range s.Points {
		p := &s.Points[i]
		p.Integrate(gravity, friction, b)
		if !p.Fixed && index != nil {
			index.Insert(p)
		}
	}
}

// ApplyConstraints runs one relaxation pass pulling consecutive points toward RestLength
func (s *Strand) ApplyConstraints() {
	for i := 0; i < len(s.Points)-1; i++ {
		p1 := &s.Points[i]
		p2 := &s.Points[i+1]

		d := r2.Sub(p2.Pos, p1.Pos)
		dist := r2.Norm(d)
		// Coincident points have no correction direction
		if dist < parameter.ConstraintEpsilon {
			continue
		}

		percent := (s.RestLength - dist) / dist / 2
		offset := r2.Scale(percent, d)

		switch {
		case p1.Fixed && p2.Fixed:
		case p1.Fixed:
			p2.Pos = r2.Add(p2.Pos, r2.Scale(2, offset))
		case p2.Fixed:
			p1.Pos = r2.Sub(p1.Pos, r2.Scale(2, offset))
		default:
			p1.Pos = r2.Sub(p1.Pos, offset)
			p2.Pos = r2.Add(p2.Pos, offset)
		}
	}
}

// Relax runs the given number of constraint passes
func (s *Strand) Relax(iterations int) {
	for range iterations {
		s.ApplyConstraints()
	}
}

// Confine clamps non-fixed points back into bounds after relaxation
func (s *Strand) Confine(b Bounds) {
	for i := range s.Points {
		if !s.Points[i].Fixed {
			s.Points[i].clampTo(b)
		}
	}
}

// Step runs one frame of simulation: integrate with indexing, relax, confine
func (s *Strand) Step(gravity, friction float64, b Bounds, index PointIndex, iterations int) {
	s.Integrate(gravity, friction, b, index)
	s.Relax(iterations)
	s.Confine(b)
}

// SegmentLength returns the current length of segment i
func (s *Strand) SegmentLength(i int) float64 {
	return r2.Norm(r2.Sub(s.Points[i+1].Pos, s.Points[i].Pos))
}

// Tension returns the fractional deviation of segment i from rest length
func (s *Strand) Tension(i int) float64 {
	if s.RestLength == 0 {
		return 0
	}
	return math.Abs(s.SegmentLength(i)-s.RestLength) / s.RestLength
}

// Deviation returns the summed absolute deviation of all segments from rest length
func (s *Strand) Deviation() float64 {
	var sum float64
	for i := 0; i < s.Segments(); i++ {
		sum += math.Abs(s.SegmentLength(i) - s.RestLength)
	}
	return sum
}
