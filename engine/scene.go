package engine

import (
	"log"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/physics"
	"github.com/lixenwraith/strands/render"
)

// SceneConfig holds simulation constants fixed for the lifetime of a scene
type SceneConfig struct {
	StrandCount   int
	Gravity       float64
	Friction      float64
	PointerRadius float64
	PointerIdle   time.Duration
	// FrameRate steps render-side easing; it does not pace the simulation
	FrameRate int
}

// DefaultSceneConfig returns the stock simulation constants
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		StrandCount:   parameter.DefaultStrandCount,
		Gravity:       parameter.Gravity,
		Friction:      parameter.Friction,
		PointerRadius: parameter.PointerRadius,
		PointerIdle:   parameter.PointerIdleTimeout,
		FrameRate:     int(time.Second / parameter.FrameUpdateInterval),
	}
}

// PluckSink is notified when the pointer strikes the free end of a strand
type PluckSink interface {
	Pluck(voice int, strength float64)
}

// Stats is a per-frame snapshot for HUD and reporting
type Stats struct {
	Frame          uint64
	Strands        int
	Points         int
	Indexed        int
	FPS            float64
	Level          int
	LowPerformance bool
	Width          float64
	Height         float64
}

// Scene owns strands, spatial grid, pointer and performance state and drives one frame per Tick
// Not safe for concurrent use; all calls belong on the frame loop goroutine
type Scene struct {
	cfg         SceneConfig
	strandCount int

	strands  []*physics.Strand
	grid     *SpatialGrid
	pointer  PointerState
	perf     *PerformanceController
	settings QualitySettings
	bounds   physics.Bounds
	nearby   []*physics.Point
	frame    uint64

	pointerRenderer *render.PointerRenderer

	sink      PluckSink
	nextPluck []time.Duration
}

// NewScene creates a scene; strands are built on the first Tick once the surface size is known
func NewScene(cfg SceneConfig) *Scene {
	s := &Scene{
		cfg:             cfg,
		strandCount:     clampStrandCount(cfg.StrandCount),
		pointer:         NewPointerState(cfg.PointerRadius, cfg.PointerIdle),
		perf:            NewPerformanceController(),
		pointerRenderer: render.NewPointerRenderer(cfg.FrameRate),
	}
	s.settings = SettingsFor(s.perf.Level(), s.strandCount)
	return s
}

func clampStrandCount(n int) int {
	return min(max(n, parameter.MinStrands), parameter.MaxStrands)
}

// SetPluckSink registers the strike listener, nil disables plucks
func (s *Scene) SetPluckSink(sink PluckSink) {
	s.sink = sink
}

// SetStrandCount changes the strand count and rebuilds all strands when the surface is known
func (s *Scene) SetStrandCount(n int) {
	n = clampStrandCount(n)
	if n == s.strandCount {
		return
	}
	s.strandCount = n
	s.settings = SettingsFor(s.perf.Level(), s.strandCount)
	if s.grid != nil {
		s.rebuild()
	}
}

// StrandCount returns the configured strand count
func (s *Scene) StrandCount() int {
	return s.strandCount
}

// MovePointer feeds a pointer sample in surface coordinates
func (s *Scene) MovePointer(x, y float64, ts time.Duration) {
	s.pointer.Move(x, y, ts)
}

// Tick runs one frame: bookkeeping, grid reset, strand steps with indexing, pointer force, render
func (s *Scene) Tick(ts time.Duration, surf render.Surface) {
	s.perf.RecordFrame(ts)
	s.perf.MaybeAdjustQuality(ts)
	s.settings = SettingsFor(s.perf.Level(), s.strandCount)

	w, h := surf.Size()
	if s.grid == nil || w != s.bounds.Width || h != s.bounds.Height {
		s.reset(w, h)
	} else {
		s.grid.Clear()
	}

	s.pointer.Expire(ts)

	for _, st := range s.strands {
		st.Step(s.cfg.Gravity, s.cfg.Friction, s.bounds, s.grid, s.settings.ConstraintIterations)
	}

	// Grid is complete for all strands before any query
	if s.pointer.Active && s.frame%uint64(s.settings.PointerStride) == 0 {
		s.applyPointer()
	}

	s.detectPlucks(ts)
	s.draw(surf)
	s.frame++
}

// reset reallocates the grid for new surface dimensions and rebuilds all strands
func (s *Scene) reset(w, h float64) {
	s.bounds = physics.Bounds{Width: max(w, 0), Height: max(h, 0)}
	if s.grid == nil {
		s.grid = NewSpatialGrid(s.bounds.Width, s.bounds.Height, s.cfg.PointerRadius)
	} else {
		s.grid.Resize(s.bounds.Width, s.bounds.Height)
	}
	s.rebuild()
}

// rebuild discards all strands and creates a fresh evenly spaced set
func (s *Scene) rebuild() {
	s.strands = s.strands[:0]
	s.nextPluck = make([]time.Duration, s.strandCount)
	if s.bounds.Width <= 0 || s.bounds.Height <= 0 {
		return
	}

	segments := physics.SegmentsFor(s.strandCount, s.settings.SegmentReduction)
	spacing := s.bounds.Width / float64(s.strandCount+1)
	length := s.bounds.Height * parameter.StrandLengthRatio

	for i := range s.strandCount {
		x := float64(i+1) * spacing
		s.strands = append(s.strands, physics.NewStrand(x, length, segments, i%len(render.Palettes)))
	}
	log.Printf("scene: built %d strands x %d segments on %.0fx%.0f", s.strandCount, segments, s.bounds.Width, s.bounds.Height)
}

// applyPointer pushes points near the pointer, dividing force down in crowded neighbourhoods
func (s *Scene) applyPointer() {
	view := s.pointer.View()
	s.nearby = s.grid.QueryRadius(view.Pos.X, view.Pos.Y, view.Radius, s.nearby[:0])
	multiplier := 1 / max(1, float64(len(s.nearby))/parameter.PointerCrowdSize)
	for _, p := range s.nearby {
		p.ApplyPointerForce(view, multiplier)
	}
	clear(s.nearby)
}

// detectPlucks notifies the sink of strands whose free end took a strong hit this frame
func (s *Scene) detectPlucks(ts time.Duration) {
	if s.sink == nil || !s.pointer.Moving {
		return
	}
	for i, st := range s.strands {
		if ts < s.nextPluck[i] {
			continue
		}
		strength := r2.Norm(st.FreeEnd().Force)
		if strength > parameter.PluckForceThreshold {
			s.sink.Pluck(i, strength)
			s.nextPluck[i] = ts + parameter.PluckCooldown
		}
	}
}

func (s *Scene) draw(surf render.Surface) {
	surf.Clear()

	low := s.perf.LowPerformance()
	if s.pointer.Active {
		s.pointerRenderer.Draw(surf, s.pointer.View(), low)
	}

	style := render.StrandStyle{
		Glow:          s.settings.Glow && !low,
		EndAccent:     s.settings.EndAccent && !low,
		BaseThickness: render.BaseThicknessFor(s.strandCount),
	}
	for _, st := range s.strands {
		render.DrawStrand(surf, st, style)
	}
}

// Strands returns the live strand list; callers must not retain it across a rebuild
func (s *Scene) Strands() []*physics.Strand {
	return s.strands
}

// Pointer returns a copy of the pointer state
func (s *Scene) Pointer() PointerState {
	return s.pointer
}

// Performance returns the scene's controller
func (s *Scene) Performance() *PerformanceController {
	return s.perf
}

// Grid returns the spatial index, nil before the first Tick
func (s *Scene) Grid() *SpatialGrid {
	return s.grid
}

// Settings returns the quality settings used by the last Tick
func (s *Scene) Settings() QualitySettings {
	return s.settings
}

// Stats returns a snapshot of the last frame
func (s *Scene) Stats() Stats {
	points := 0
	for _, st := range s.strands {
		points += len(st.Points)
	}
	indexed := 0
	if s.grid != nil {
		indexed = s.grid.Len()
	}
	return Stats{
		Frame:          s.frame,
		Strands:        len(s.strands),
		Points:         points,
		Indexed:        indexed,
		FPS:            s.perf.FPS(),
		Level:          s.perf.Level(),
		LowPerformance: s.perf.LowPerformance(),
		Width:          s.bounds.Width,
		Height:         s.bounds.Height,
	}
}
