package bench

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lixenwraith/strands/engine"
	"github.com/lixenwraith/strands/parameter"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	eventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const graphWidth = 60

var levelNames = [...]string{
	parameter.QualityLow:    "low",
	parameter.QualityMedium: "medium",
	parameter.QualityHigh:   "high",
}

// LevelName returns a readable quality level
func LevelName(level int) string {
	if level < 0 || level >= len(levelNames) {
		return fmt.Sprintf("level %d", level)
	}
	return levelNames[level]
}

// Report is the outcome of a bench run
type Report struct {
	Profile     Profile
	Cols, Rows  int
	Samples     []Sample
	Transitions []Transition
	Final       engine.Stats
}

// FPSSeries returns smoothed FPS per frame
func (r Report) FPSSeries() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.FPS
	}
	return out
}

// LevelSeries returns the quality level per frame
func (r Report) LevelSeries() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Level)
	}
	return out
}

// costs returns tick costs in microseconds, sorted ascending
func (r Report) costs() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Cost) / float64(time.Microsecond)
	}
	slices.Sort(out)
	return out
}

// MeanCost returns the mean wall-clock cost of a tick
func (r Report) MeanCost() time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	return time.Duration(stat.Mean(r.costs(), nil) * float64(time.Microsecond))
}

// CostQuantile returns the p-quantile of tick cost, p in [0, 1]
func (r Report) CostQuantile(p float64) time.Duration {
	if len(r.Samples) == 0 {
		return 0
	}
	return time.Duration(stat.Quantile(p, stat.Empirical, r.costs(), nil) * float64(time.Microsecond))
}

// MinLevel returns the lowest level reached
func (r Report) MinLevel() int {
	if len(r.Samples) == 0 {
		return parameter.QualityHigh
	}
	return int(floats.Min(r.LevelSeries()))
}

// FinalLevel returns the level after the last frame
func (r Report) FinalLevel() int {
	if len(r.Samples) == 0 {
		return parameter.QualityHigh
	}
	return r.Samples[len(r.Samples)-1].Level
}

// LowFrames counts frames flagged as low performance
func (r Report) LowFrames() int {
	n := 0
	for _, s := range r.Samples {
		if s.Low {
			n++
		}
	}
	return n
}

// Render formats the report for a terminal
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("strands bench"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
		b.WriteString("\n")
	}
	row("profile", r.Profile.String())
	row("canvas", fmt.Sprintf("%dx%d cells, %.0fx%.0f px", r.Cols, r.Rows, r.Final.Width, r.Final.Height))
	row("strands", fmt.Sprintf("%d (%d points)", r.Final.Strands, r.Final.Points))
	row("frames", fmt.Sprintf("%d (%d low)", len(r.Samples), r.LowFrames()))
	row("tick cost", fmt.Sprintf("mean %v  p50 %v  p95 %v",
		r.MeanCost().Round(time.Microsecond),
		r.CostQuantile(0.5).Round(time.Microsecond),
		r.CostQuantile(0.95).Round(time.Microsecond)))
	row("quality", fmt.Sprintf("final %s, min %s", LevelName(r.FinalLevel()), LevelName(r.MinLevel())))

	if len(r.Samples) > 1 {
		fps := asciigraph.Plot(r.FPSSeries(),
			asciigraph.Height(8), asciigraph.Width(graphWidth), asciigraph.Precision(0),
			asciigraph.Caption("smoothed FPS"))
		levels := asciigraph.Plot(r.LevelSeries(),
			asciigraph.Height(2), asciigraph.Width(graphWidth), asciigraph.Precision(0),
			asciigraph.Caption("quality level"))
		b.WriteString(graphStyle.Render(fps))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(levels))
		b.WriteString("\n")
	}

	for _, t := range r.Transitions {
		b.WriteString(eventStyle.Render(fmt.Sprintf("frame %4d  %8v  %s -> %s",
			t.Frame, t.Timestamp.Round(time.Millisecond), LevelName(t.From), LevelName(t.To))))
		b.WriteString("\n")
	}
	return b.String()
}
