// Package ui draws the heads-up status line over the grid.
package ui

import (
	"fmt"
	"strings"

	"cgol/internal/sim"
)

// StatusLine formats the controller summary shown by the HUD.
func StatusLine(s sim.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  gen %d  pop %d  %dx%d", s.State, s.Generation, s.Population, s.Size.W, s.Size.H)
	if s.StepFrames > 0 {
		fmt.Fprintf(&b, "  every %d", s.StepFrames+1)
	}
	fmt.Fprintf(&b, "  %s", s.View.Mode)
	if s.View.Swapped {
		b.WriteString("  inverted")
	}
	return b.String()
}

// KeyHelp lists the bindings shown beneath the status line.
const KeyHelp = "Enter run  Space step  Esc reset  Tab mode  ` colours  F1-F12 load (Shift save)  R noise  H hud  End quit"
