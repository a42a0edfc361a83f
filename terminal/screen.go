package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/strands/core"
	"github.com/lixenwraith/strands/parameter"
	"github.com/lixenwraith/strands/render"
)

// Screen presents canvases on a tcell screen and streams its events
type Screen struct {
	screen   tcell.Screen
	hudStyle tcell.Style

	eventsOnce sync.Once
	events     chan tcell.Event
	quit       chan struct{}
	finiOnce   sync.Once
}

// New initializes the process terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes a caller-supplied tcell screen, used with simulation screens in tests
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	bg := render.RGBToTcell(render.RgbBackground)
	s.SetStyle(tcell.StyleDefault.Background(bg))
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.Clear()

	return &Screen{
		screen:   s,
		hudStyle: tcell.StyleDefault.Foreground(render.RGBToTcell(render.RGBWhite)).Background(bg).Bold(true),
		events:   make(chan tcell.Event, parameter.EventChannelSize),
		quit:     make(chan struct{}),
	}, nil
}

// Size returns the terminal dimensions in cells
func (s *Screen) Size() (cols, rows int) {
	return s.screen.Size()
}

// Events starts the poll goroutine on first call and returns its channel
func (s *Screen) Events() <-chan tcell.Event {
	s.eventsOnce.Do(func() {
		core.Go(func() {
			s.screen.ChannelEvents(s.events, s.quit)
		})
	})
	return s.events
}

// Present copies the canvas into the screen back buffer, overlays the HUD line and shows it
// Cells outside the canvas are painted with the background
func (s *Screen) Present(c *render.Canvas, hud string) {
	cols, rows := s.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			v := c.Cell(col, row)
			s.screen.SetContent(col, row, v.Rune, nil, render.CellStyle(v))
		}
	}

	col := 0
	for _, r := range hud {
		if col >= cols {
			break
		}
		s.screen.SetContent(col, 0, r, nil, s.hudStyle)
		col++
	}

	s.screen.Show()
}

// Sync forces a full redraw, used after resize
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Fini stops event polling and restores the terminal, safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}
