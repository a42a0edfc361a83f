package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/strands/parameter"
)

// Engine plays pluck tones through the system speaker
// Pluck is safe to call from the frame loop; mixer access is guarded by the speaker lock
type Engine struct {
	cfg   Config
	rate  beep.SampleRate
	mixer *beep.Mixer

	mu      sync.Mutex
	running atomic.Bool
	muted   atomic.Bool
	plucks  atomic.Uint64

	// Replaced in tests to avoid opening a device
	initSpeaker  func(beep.SampleRate, int) error
	play         func(...beep.Streamer)
	closeSpeaker func()
}

// NewEngine creates a stopped engine
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	e := &Engine{
		cfg:          cfg,
		rate:         beep.SampleRate(cfg.SampleRate),
		mixer:        &beep.Mixer{},
		initSpeaker:  speaker.Init,
		play:         speaker.Play,
		closeSpeaker: speaker.Close,
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start opens the speaker and attaches the mixer; disabled engines start silently
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if !e.cfg.Enabled {
		return nil
	}

	if err := e.initSpeaker(e.rate, e.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	e.play(e.mixer)
	e.running.Store(true)
	log.Printf("audio: speaker started at %d Hz", e.cfg.SampleRate)
	return nil
}

// Stop silences all voices and detaches from the speaker
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.closeSpeaker()
}

// Pluck sounds the voice's pitch at a volume scaled by strike strength
func (e *Engine) Pluck(voice int, strength float64) {
	if !e.running.Load() || e.muted.Load() {
		return
	}

	gain := GainFor(strength) * e.cfg.MasterVolume
	if gain <= 0 {
		return
	}
	s, err := NewPluck(FrequencyFor(voice), gain, e.rate)
	if err != nil {
		log.Printf("audio: pluck voice %d: %v", voice, err)
		return
	}

	speaker.Lock()
	if e.mixer.Len() < parameter.PluckMaxVoices {
		e.mixer.Add(s)
		e.plucks.Add(1)
	}
	speaker.Unlock()
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning reports whether the speaker is attached
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// Plucks returns the number of tones queued since start
func (e *Engine) Plucks() uint64 {
	return e.plucks.Load()
}
