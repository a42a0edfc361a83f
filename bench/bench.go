// Package bench drives a Scene headlessly under a scripted frame-rate profile
package bench

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/strands/config"
	"github.com/lixenwraith/strands/engine"
	"github.com/lixenwraith/strands/render"
)

// ErrProfile marks an unparseable or empty profile
var ErrProfile = errors.New("invalid bench profile")

// Phase runs Frames ticks spaced as if the host managed FPS frames per second
type Phase struct {
	Frames int
	FPS    int
}

func (p Phase) String() string {
	return fmt.Sprintf("%d@%d", p.Frames, p.FPS)
}

// Profile is an ordered list of phases
type Profile []Phase

// DefaultProfile is steady, then starved, then fast
var DefaultProfile = Profile{
	{Frames: 120, FPS: 60},
	{Frames: 200, FPS: 20},
	{Frames: 400, FPS: 90},
}

func (p Profile) String() string {
	parts := make([]string, len(p))
	for i, ph := range p {
		parts[i] = ph.String()
	}
	return strings.Join(parts, ",")
}

// Frames returns the total frame count
func (p Profile) Frames() int {
	n := 0
	for _, ph := range p {
		n += ph.Frames
	}
	return n
}

// ParseProfile reads "frames@fps[,frames@fps...]"; empty or "default" yields DefaultProfile
func ParseProfile(s string) (Profile, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "default" {
		return DefaultProfile, nil
	}

	var p Profile
	for _, part := range strings.Split(s, ",") {
		framesStr, fpsStr, ok := strings.Cut(strings.TrimSpace(part), "@")
		if !ok {
			return nil, fmt.Errorf("%w: phase %q missing @", ErrProfile, part)
		}
		frames, err := strconv.Atoi(framesStr)
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("%w: phase %q frames", ErrProfile, part)
		}
		fps, err := strconv.Atoi(fpsStr)
		if err != nil || fps <= 0 {
			return nil, fmt.Errorf("%w: phase %q fps", ErrProfile, part)
		}
		p = append(p, Phase{Frames: frames, FPS: fps})
	}
	return p, nil
}

// Sample is one frame's observation
type Sample struct {
	Timestamp time.Duration
	FPS       float64
	Level     int
	Low       bool
	Cost      time.Duration
}

// Transition records a quality level change
type Transition struct {
	Frame     int
	Timestamp time.Duration
	From, To  int
}

// Run ticks a fresh scene on a cols x rows canvas through every phase of the profile
// The pointer sweeps horizontally across the middle of the surface so the force pass runs
func Run(cfg config.Config, profile Profile, cols, rows int) (Report, error) {
	if len(profile) == 0 {
		return Report{}, fmt.Errorf("%w: empty", ErrProfile)
	}
	if cols <= 0 || rows <= 0 {
		return Report{}, fmt.Errorf("bench: canvas %dx%d", cols, rows)
	}

	canvas := render.NewCanvas(cols, rows, cfg.Display.PixelsPerColumn, cfg.Display.PixelsPerRow)
	scene := engine.NewScene(cfg.Scene())

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	frames := engine.NewFrameClock(clock)
	wall := engine.NewTimeProvider()

	width, height := canvas.Size()
	sweep := width / 2

	report := Report{
		Profile: profile,
		Cols:    cols,
		Rows:    rows,
		Samples: make([]Sample, 0, profile.Frames()),
	}

	frame := 0
	for _, ph := range profile {
		interval := time.Second / time.Duration(ph.FPS)
		for range ph.Frames {
			ts := frames.Timestamp()
			x := math.Mod(float64(frame)*cfg.Pointer.Radius/4, width)
			scene.MovePointer(x, height/2+math.Sin(float64(frame)/10)*sweep/4, ts)

			before := scene.Performance().Level()
			start := wall.Now()
			scene.Tick(ts, canvas)
			cost := wall.Now().Sub(start)

			perf := scene.Performance()
			if perf.Level() != before {
				report.Transitions = append(report.Transitions, Transition{
					Frame: frame, Timestamp: ts, From: before, To: perf.Level(),
				})
			}
			report.Samples = append(report.Samples, Sample{
				Timestamp: ts,
				FPS:       perf.FPS(),
				Level:     perf.Level(),
				Low:       perf.LowPerformance(),
				Cost:      cost,
			})

			clock.Advance(interval)
			frame++
		}
	}

	report.Final = scene.Stats()
	return report, nil
}
