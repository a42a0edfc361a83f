package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/strands/bench"
	"github.com/lixenwraith/strands/engine"
)

// formatHUD builds the one-line status overlay
func formatHUD(st engine.Stats, audioOn, muted bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, " strands %d | points %d | %.0f fps | %s", st.Strands, st.Points, st.FPS, bench.LevelName(st.Level))
	if st.LowPerformance {
		b.WriteString(" (effects off)")
	}
	switch {
	case !audioOn:
		b.WriteString(" | audio off")
	case muted:
		b.WriteString(" | muted")
	}
	b.WriteString(" | +/- strands  h hud  m mute  q quit ")
	return b.String()
}
