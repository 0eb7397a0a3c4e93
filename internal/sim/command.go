package sim

// Kind identifies what a Command asks the controller to do.
type Kind int

const (
	// KindNone is the zero command and does nothing.
	KindNone Kind = iota
	// KindToggleRun flips between Paused and Running.
	KindToggleRun
	// KindStep runs exactly one generation.
	KindStep
	// KindReset clears the grid.
	KindReset
	// KindCycleDrawMode moves to the next (or previous) draw mode.
	KindCycleDrawMode
	// KindSwapColors exchanges the active and inactive colours.
	KindSwapColors
	// KindSlot saves to or loads from a numbered slot.
	KindSlot
	// KindClick toggles the cell under a pixel position.
	KindClick
	// KindRandomize replaces the grid with a noise-seeded fill.
	KindRandomize
	// KindToggleHUD shows or hides the status overlay.
	KindToggleHUD
	// KindQuit ends the frame loop.
	KindQuit
)

var kindNames = map[Kind]string{
	KindNone:          "none",
	KindToggleRun:     "toggle-run",
	KindStep:          "step",
	KindReset:         "reset",
	KindCycleDrawMode: "cycle-draw-mode",
	KindSwapColors:    "swap-colors",
	KindSlot:          "slot",
	KindClick:         "click",
	KindRandomize:     "randomize",
	KindToggleHUD:     "toggle-hud",
	KindQuit:          "quit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one input event translated for the controller. Only the fields
// relevant to Kind are read.
type Command struct {
	Kind Kind

	// Slot and Save parameterize KindSlot; Save false means load.
	Slot int
	Save bool

	// Reverse cycles draw modes backwards.
	Reverse bool

	// X and Y are pixel coordinates for KindClick.
	X, Y int

	// Seed feeds KindRandomize.
	Seed int64
}

// ToggleRun returns a run/pause command.
func ToggleRun() Command { return Command{Kind: KindToggleRun} }

// Step returns a single-step command.
func Step() Command { return Command{Kind: KindStep} }

// Reset returns a clear-grid command.
func Reset() Command { return Command{Kind: KindReset} }

// CycleDrawMode returns a draw mode change.
func CycleDrawMode(reverse bool) Command {
	return Command{Kind: KindCycleDrawMode, Reverse: reverse}
}

// SwapColors returns a colour scheme swap.
func SwapColors() Command { return Command{Kind: KindSwapColors} }

// SaveSlot returns a save command for slot.
func SaveSlot(slot int) Command { return Command{Kind: KindSlot, Slot: slot, Save: true} }

// LoadSlot returns a load command for slot.
func LoadSlot(slot int) Command { return Command{Kind: KindSlot, Slot: slot} }

// Click returns a toggle-at-pixel command.
func Click(px, py int) Command { return Command{Kind: KindClick, X: px, Y: py} }

// Randomize returns a noise fill command.
func Randomize(seed int64) Command { return Command{Kind: KindRandomize, Seed: seed} }

// ToggleHUD returns an overlay visibility toggle.
func ToggleHUD() Command { return Command{Kind: KindToggleHUD} }

// Quit returns a termination command.
func Quit() Command { return Command{Kind: KindQuit} }
