package audio

import (
	"github.com/lixenwraith/strands/parameter"
)

// Config holds audio engine settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns the stock audio settings, enabled at default volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}
