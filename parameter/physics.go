package parameter

// Strand integration
const (
	// Gravity is the per-frame downward velocity increment (surface pixels/frame²)
	Gravity = 0.5

	// Friction is the per-frame velocity retention factor
	Friction = 0.98

	// BounceDamping scales and inverts the velocity component on boundary contact
	BounceDamping = -0.3

	// ConstraintEpsilon is the minimum pair distance that receives a correction
	ConstraintEpsilon = 1e-9
)

// Strand geometry
const (
	// StrandLengthRatio is the rope length as a fraction of surface height
	StrandLengthRatio = 0.7

	// SegmentsBase is the segment count for small strand counts
	SegmentsBase = 15

	// SegmentsMedium applies when strand count exceeds SegmentsMediumAbove
	SegmentsMedium      = 12
	SegmentsMediumAbove = 40

	// SegmentsLow applies when strand count exceeds SegmentsLowAbove
	SegmentsLow      = 8
	SegmentsLowAbove = 80

	// SegmentsMin floors the quality-reduced segment count
	SegmentsMin = 5
)
