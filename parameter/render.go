package parameter

// Strand rendering
const (
	// StrandCullMargin extends the visible horizontal range before a strand is culled
	StrandCullMargin = 50.0

	StrandBaseThickness      = 2.0
	StrandBaseThicknessDense = 1.5

	// StrandDenseAbove switches to the thinner base thickness
	StrandDenseAbove = 80

	// StrandTensionGain scales the tension term of segment width
	StrandTensionGain = 2.0

	// StrandTaper is the extra width at the anchor, falling to zero at the free end
	StrandTaper = 1.0

	StrandGlowAlpha   = 0.2
	StrandGlowBlur    = 3.0
	StrandAccentSize  = 3.0
	StrandAccentBlur  = 5.0
	GradientMidOffset = 0.5
)

// Pointer rendering
const (
	PointerDotRadius = 8.0
	PointerDotAlpha  = 0.7
	PointerRingAlpha = 0.2
	PointerRingWidth = 1.0

	// PointerRingFrequency and PointerRingDamping tune the ring fade spring
	PointerRingFrequency = 8.0
	PointerRingDamping   = 1.0
)
