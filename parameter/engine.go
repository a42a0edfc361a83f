package parameter

import "time"

// Frame loop
const (
	// FrameUpdateInterval is the display refresh interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between the poll goroutine and the loop
	EventChannelSize = 256
)

// Strand count limits
const (
	DefaultStrandCount = 30
	MinStrands         = 1
	MaxStrands         = 150
	StrandCountStep    = 5
)

// Surface mapping: virtual pixels per terminal cell
const (
	DefaultPixelsPerColumn = 8
	DefaultPixelsPerRow    = 16
)

// Frame rate limits for the host loop
const (
	DefaultFrameRate = 60
	MaxFrameRate     = 240
)

// Config sources
const (
	DefaultConfigFile = "strands.toml"
	DefaultEnvFile    = ".env"
	EnvPrefix         = "STRANDS_"
)

// Headless bench canvas in cells
const (
	BenchCols = 120
	BenchRows = 40
)
