package parameter

import "time"

// Pluck tones
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	PluckDuration = 220 * time.Millisecond
	PluckAttack   = 5 * time.Millisecond
	PluckRelease  = 180 * time.Millisecond

	// PluckCooldown limits plucks per strand
	PluckCooldown = 150 * time.Millisecond

	// PluckForceThreshold is the free-end force magnitude that counts as a strike
	PluckForceThreshold = 4.0

	// PluckBaseFrequency is the lowest note of the scale (A3)
	PluckBaseFrequency = 220.0

	DefaultMasterVolume = 0.5
)

// PluckScale holds major pentatonic semitone offsets
var PluckScale = [5]int{0, 2, 4, 7, 9}

// Pluck voicing
const (
	// PluckOctaves is how many octaves the scale spans before voices wrap
	PluckOctaves = 3

	// PluckStrengthFull is the strike force that plays at full volume
	PluckStrengthFull = 20.0

	// PluckOvertoneGain is the octave overtone level relative to the fundamental
	PluckOvertoneGain = 0.3

	// PluckMaxVoices caps simultaneously sounding plucks
	PluckMaxVoices = 12
)
