package engine

import (
	"log"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/lixenwraith/strands/parameter"
)

// QualitySettings is the fidelity bundle consumed by simulation and rendering
type QualitySettings struct {
	Glow                 bool
	EndAccent            bool
	ConstraintIterations int
	PointerStride        int
	SegmentReduction     float64
}

// SettingsFor maps a quality level and strand count to settings
// Strand count caps glow and accent independently of measured FPS
func SettingsFor(level, strandCount int) QualitySettings {
	switch level {
	case parameter.QualityLow:
		return QualitySettings{
			Glow:                 false,
			EndAccent:            false,
			ConstraintIterations: 1,
			PointerStride:        3,
			SegmentReduction:     0.5,
		}
	case parameter.QualityMedium:
		return QualitySettings{
			Glow:                 strandCount <= parameter.GlowMaxStrandsMedium,
			EndAccent:            strandCount <= parameter.AccentMaxStrandsMedium,
			ConstraintIterations: 2,
			PointerStride:        2,
			SegmentReduction:     0.75,
		}
	default:
		return QualitySettings{
			Glow:                 strandCount <= parameter.GlowMaxStrandsHigh,
			EndAccent:            strandCount <= parameter.AccentMaxStrandsHigh,
			ConstraintIterations: 3,
			PointerStride:        1,
			SegmentReduction:     1,
		}
	}
}

// PerformanceController smooths frame rate and steps the quality level on a cooldown
// Not safe for concurrent use; owned by the frame loop
type PerformanceController struct {
	fps       float64
	frameTime time.Duration

	history [parameter.FPSHistorySize]float64
	head    int
	count   int

	level          int
	lowPerformance bool

	lastTime   time.Duration
	hasLast    bool
	lastAdjust time.Duration
}

// NewPerformanceController starts at high quality with the initial FPS estimate
func NewPerformanceController() *PerformanceController {
	return &PerformanceController{
		fps:   parameter.FPSInitial,
		level: parameter.QualityHigh,
	}
}

// RecordFrame folds the interval since the previous frame into the smoothed FPS
// The first frame and non-positive intervals only move the reference timestamp
func (c *PerformanceController) RecordFrame(ts time.Duration) {
	d := ts - c.lastTime
	first := !c.hasLast
	c.lastTime = ts
	c.hasLast = true
	if first || d <= 0 {
		return
	}
	c.frameTime = d

	instant := float64(time.Second) / float64(d)
	c.fps = c.fps*(1-parameter.FPSSmoothing) + instant*parameter.FPSSmoothing

	c.history[c.head] = c.fps
	c.head = (c.head + 1) % len(c.history)
	if c.count < len(c.history) {
		c.count++
	}

	c.lowPerformance = c.fps < parameter.FPSLowPerformance
}

// MaybeAdjustQuality steps the level by one when the history mean leaves the dead band
// Evaluates only with a full history and once per cooldown window; reports whether the level changed
func (c *PerformanceController) MaybeAdjustQuality(ts time.Duration) bool {
	if c.count < len(c.history) || ts-c.lastAdjust <= parameter.QualityCooldown {
		return false
	}
	c.lastAdjust = ts

	avg := c.Average()
	switch {
	case avg < parameter.FPSThresholds[0] && c.level > parameter.QualityLow:
		c.level--
		log.Printf("quality: reducing to level %d (avg %.1f fps)", c.level, avg)
		return true
	case avg > parameter.FPSThresholds[2] && c.level < parameter.QualityHigh:
		c.level++
		log.Printf("quality: increasing to level %d (avg %.1f fps)", c.level, avg)
		return true
	}
	return false
}

// Average returns the mean of the recorded history, the smoothed FPS if empty
func (c *PerformanceController) Average() float64 {
	if c.count == 0 {
		return c.fps
	}
	return floats.Sum(c.history[:c.count]) / float64(c.count)
}

// History returns recorded samples oldest first
func (c *PerformanceController) History() []float64 {
	out := make([]float64, 0, c.count)
	start := (c.head - c.count + len(c.history)) % len(c.history)
	for i := range c.count {
		out = append(out, c.history[(start+i)%len(c.history)])
	}
	return out
}

// FPS returns the smoothed frame rate
func (c *PerformanceController) FPS() float64 { return c.fps }

// FrameTime returns the last measured frame interval
func (c *PerformanceController) FrameTime() time.Duration { return c.frameTime }

// Level returns the current quality level
func (c *PerformanceController) Level() int { return c.level }

// LowPerformance reports whether smoothed FPS is below the effect gating threshold
func (c *PerformanceController) LowPerformance() bool { return c.lowPerformance }
