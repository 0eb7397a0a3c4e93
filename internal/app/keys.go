//go:build ebiten

package app

import (
	"cgol/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// binding maps a key press to a command. shift reports whether either shift
// key is held.
type binding struct {
	key ebiten.Key
	cmd func(shift bool) sim.Command
}

var bindings = []binding{
	{ebiten.KeyEnter, func(bool) sim.Command { return sim.ToggleRun() }},
	{ebiten.KeySpace, func(bool) sim.Command { return sim.Step() }},
	{ebiten.KeyEscape, func(bool) sim.Command { return sim.Reset() }},
	{ebiten.KeyTab, func(shift bool) sim.Command { return sim.CycleDrawMode(shift) }},
	{ebiten.KeyBackquote, func(bool) sim.Command { return sim.SwapColors() }},
	{ebiten.KeyH, func(bool) sim.Command { return sim.ToggleHUD() }},
	{ebiten.KeyEnd, func(bool) sim.Command { return sim.Quit() }},
}

var slotKeys = []ebiten.Key{
	ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4,
	ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8,
	ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
}

// pollCommands translates this tick's input into commands, in key order.
func pollCommands(seed func() int64) []sim.Command {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	var cmds []sim.Command
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			cmds = append(cmds, b.cmd(shift))
		}
	}
	for i, k := range slotKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if shift {
			cmds = append(cmds, sim.SaveSlot(i+1))
		} else {
			cmds = append(cmds, sim.LoadSlot(i+1))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cmds = append(cmds, sim.Randomize(seed()))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cmds = append(cmds, sim.Click(ebiten.CursorPosition()))
	}
	return cmds
}
