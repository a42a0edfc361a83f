package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/strands/audio"
	"github.com/lixenwraith/strands/engine"
	"github.com/lixenwraith/strands/parameter"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Config is the host configuration, layered default < file < env < flags
type Config struct {
	StrandCount int     `toml:"strand_count"`
	Debug       bool    `toml:"debug"`
	Physics     Physics `toml:"physics"`
	Pointer     Pointer `toml:"pointer"`
	Display     Display `toml:"display"`
	Audio       Audio   `toml:"audio"`
}

type Physics struct {
	Gravity  float64 `toml:"gravity"`
	Friction float64 `toml:"friction"`
}

type Pointer struct {
	Radius        float64 `toml:"radius"`
	IdleTimeoutMS int     `toml:"idle_timeout_ms"`
}

// Display maps terminal cells to surface pixels and paces the frame loop
type Display struct {
	PixelsPerColumn float64 `toml:"pixels_per_column"`
	PixelsPerRow    float64 `toml:"pixels_per_row"`
	FrameRate       int     `toml:"frame_rate"`
	ShowHUD         bool    `toml:"show_hud"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		StrandCount: parameter.DefaultStrandCount,
		Physics: Physics{
			Gravity:  parameter.Gravity,
			Friction: parameter.Friction,
		},
		Pointer: Pointer{
			Radius:        parameter.PointerRadius,
			IdleTimeoutMS: int(parameter.PointerIdleTimeout / time.Millisecond),
		},
		Display: Display{
			PixelsPerColumn: parameter.DefaultPixelsPerColumn,
			PixelsPerRow:    parameter.DefaultPixelsPerRow,
			FrameRate:       parameter.DefaultFrameRate,
			ShowHUD:         true,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  parameter.DefaultMasterVolume,
		},
	}
}

// Load reads a TOML file over the defaults; a missing file at the default path is not an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == parameter.DefaultConfigFile {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML, creating parent directories
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every out-of-range value, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.StrandCount >= parameter.MinStrands && c.StrandCount <= parameter.MaxStrands,
		"strand_count %d outside [%d, %d]", c.StrandCount, parameter.MinStrands, parameter.MaxStrands)
	check(isFinite(c.Physics.Gravity), "physics.gravity %v not finite", c.Physics.Gravity)
	check(c.Physics.Friction > 0 && c.Physics.Friction <= 1, "physics.friction %v outside (0, 1]", c.Physics.Friction)
	check(c.Pointer.Radius > 0 && isFinite(c.Pointer.Radius), "pointer.radius %v must be positive", c.Pointer.Radius)
	check(c.Pointer.IdleTimeoutMS > 0, "pointer.idle_timeout_ms %d must be positive", c.Pointer.IdleTimeoutMS)
	check(c.Display.PixelsPerColumn > 0 && isFinite(c.Display.PixelsPerColumn), "display.pixels_per_column %v must be positive", c.Display.PixelsPerColumn)
	check(c.Display.PixelsPerRow > 0 && isFinite(c.Display.PixelsPerRow), "display.pixels_per_row %v must be positive", c.Display.PixelsPerRow)
	check(c.Display.FrameRate > 0 && c.Display.FrameRate <= parameter.MaxFrameRate,
		"display.frame_rate %d outside [1, %d]", c.Display.FrameRate, parameter.MaxFrameRate)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %v outside [0, 1]", c.Audio.Volume)

	return errors.Join(errs...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FrameInterval is the host ticker period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Display.FrameRate, 1))
}

// Scene converts to simulation constants
func (c Config) Scene() engine.SceneConfig {
	return engine.SceneConfig{
		StrandCount:   c.StrandCount,
		Gravity:       c.Physics.Gravity,
		Friction:      c.Physics.Friction,
		PointerRadius: c.Pointer.Radius,
		PointerIdle:   time.Duration(c.Pointer.IdleTimeoutMS) * time.Millisecond,
		FrameRate:     c.Display.FrameRate,
	}
}

// AudioConfig converts to audio engine settings
func (c Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.Volume,
		SampleRate:   parameter.AudioSampleRate,
	}
}
