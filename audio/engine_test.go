package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/strands/parameter"
)

// newTestEngine returns an engine whose speaker hooks record calls instead of opening a device
func newTestEngine(cfg Config, initErr error) (*Engine, *int) {
	e := NewEngine(cfg)
	played := 0
	e.initSpeaker = func(beep.SampleRate, int) error { return initErr }
	e.play = func(...beep.Streamer) { played++ }
	e.closeSpeaker = func() {}
	return e, &played
}

func TestEngineDisabledIsNoop(t *testing.T) {
	e, played := newTestEngine(Config{Enabled: false, MasterVolume: 1}, nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start on disabled engine: %v", err)
	}
	if e.IsRunning() || *played != 0 {
		t.Errorf("disabled engine attached to speaker: running=%v played=%d", e.IsRunning(), *played)
	}

	e.Pluck(0, 100)
	if e.Plucks() != 0 {
		t.Errorf("disabled engine queued %d plucks", e.Plucks())
	}
	e.Stop()
}

func TestEngineStartFailure(t *testing.T) {
	errNoDevice := errors.New("no device")
	e, _ := newTestEngine(DefaultConfig(), errNoDevice)

	err := e.Start()
	if !errors.Is(err, errNoDevice) {
		t.Fatalf("Start error = %v, want wrapped %v", err, errNoDevice)
	}
	if e.IsRunning() {
		t.Error("engine running after failed start")
	}
	e.Pluck(0, 100)
	if e.Plucks() != 0 {
		t.Error("failed engine queued plucks")
	}
}

func TestEnginePluck(t *testing.T) {
	e, played := newTestEngine(DefaultConfig(), nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Stop()

	if *played != 1 {
		t.Errorf("mixer attached %d times, want 1", *played)
	}
	if err := e.Start(); err == nil {
		t.Error("second Start should fail")
	}

	e.Pluck(2, parameter.PluckStrengthFull)
	if e.Plucks() != 1 || e.mixer.Len() != 1 {
		t.Errorf("after one pluck: plucks=%d mixer=%d", e.Plucks(), e.mixer.Len())
	}

	// Zero strength is silent and not queued
	e.Pluck(2, 0)
	if e.Plucks() != 1 {
		t.Errorf("zero-strength pluck queued, plucks=%d", e.Plucks())
	}
}

func TestEngineVoiceCap(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Stop()

	for i := 0; i < parameter.PluckMaxVoices*2; i++ {
		e.Pluck(i, parameter.PluckStrengthFull)
	}
	if e.mixer.Len() != parameter.PluckMaxVoices {
		t.Errorf("mixer holds %d voices, want cap %d", e.mixer.Len(), parameter.PluckMaxVoices)
	}
	if e.Plucks() != parameter.PluckMaxVoices {
		t.Errorf("Plucks() = %d, want %d", e.Plucks(), parameter.PluckMaxVoices)
	}
}

func TestEngineMute(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Stop()

	if audible := e.ToggleMute(); audible {
		t.Error("ToggleMute should report muted")
	}
	e.Pluck(0, parameter.PluckStrengthFull)
	if e.Plucks() != 0 {
		t.Error("muted engine queued a pluck")
	}
	if audible := e.ToggleMute(); !audible || e.IsMuted() {
		t.Error("ToggleMute should restore sound")
	}
}

func TestEngineStopClearsVoices(t *testing.T) {
	e, _ := newTestEngine(DefaultConfig(), nil)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Pluck(0, parameter.PluckStrengthFull)
	e.Stop()
	e.Stop()

	if e.IsRunning() || e.mixer.Len() != 0 {
		t.Errorf("after Stop: running=%v voices=%d", e.IsRunning(), e.mixer.Len())
	}
}
