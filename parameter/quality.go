package parameter

import "time"

// Adaptive quality control
const (
	// FPSInitial seeds the smoothed estimate before the first measured frame
	FPSInitial = 60.0

	// FPSSmoothing is the EMA weight of the newest instantaneous sample
	FPSSmoothing = 0.1

	// FPSHistorySize is the ring capacity of smoothed samples; must fill before adjusting
	FPSHistorySize = 10

	// FPSLowPerformance flags low performance for effect gating
	FPSLowPerformance = 40.0

	// QualityCooldown is the minimum interval between level evaluations
	QualityCooldown = 2000 * time.Millisecond

	QualityLow    = 0
	QualityMedium = 1
	QualityHigh   = 2
)

// FPSThresholds are the low, medium and high marks; below low steps down, above high steps up
var FPSThresholds = [3]float64{30, 45, 60}

// Strand count caps for effects, independent of measured FPS
const (
	GlowMaxStrandsMedium   = 60
	AccentMaxStrandsMedium = 80
	GlowMaxStrandsHigh     = 80
	AccentMaxStrandsHigh   = 100
)
