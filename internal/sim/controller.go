// Package sim drives a life.Grid: run/pause state, step cadence, command
// dispatch and the render flush.
package sim

import (
	"io"
	"log/slog"

	"cgol/internal/core"
	"cgol/internal/life"
	"cgol/internal/pattern"
)

// State is the controller's run state.
type State int

const (
	// Paused is the initial state; only explicit steps advance the grid.
	Paused State = iota
	// Running advances the grid whenever the cadence fires.
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// Slots persists grid patterns by slot number. Load must never fail hard: it
// reports false after falling back to an empty grid.
type Slots interface {
	Save(slot int, g *life.Grid) error
	Load(slot int, g *life.Grid) bool
}

// Observer receives engine activity, typically for metrics.
type Observer interface {
	Stepped(changed, population int)
	Flushed(cells int)
	StateChanged(s State)
}

// Config controls stepping and input handling.
type Config struct {
	// StepFrames is the number of idle frames between steps while running;
	// zero steps every frame.
	StepFrames int
	// PauseOnEdit pauses a running simulation when a cell is clicked.
	PauseOnEdit bool
	// Footprint is the on-screen size of one cell in pixels, border included.
	Footprint int
	// Noise tunes the randomize command.
	Noise pattern.NoiseConfig
}

// DefaultConfig returns an uncapped cadence with pause-on-edit.
func DefaultConfig() Config {
	return Config{StepFrames: 0, PauseOnEdit: true, Footprint: 15, Noise: pattern.DefaultNoiseConfig()}
}

// Status is a read-only summary for HUDs and reports.
type Status struct {
	State      State
	Generation uint64
	Population int
	Size       core.Size
	StepFrames int
	View       View
}

// Controller owns the run state around a grid. It is not safe for concurrent
// use; one frame loop drives it.
type Controller struct {
	grid     *life.Grid
	cfg      Config
	state    State
	cadence  *core.Cadence
	view     View
	slots    Slots
	observer Observer
	logger   *slog.Logger
	quit     bool
}

// New returns a paused controller for grid. A nil logger discards output.
func New(grid *life.Grid, cfg Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Footprint <= 0 {
		cfg.Footprint = 1
	}
	if cfg.Noise == (pattern.NoiseConfig{}) {
		cfg.Noise = pattern.DefaultNoiseConfig()
	}
	return &Controller{
		grid:    grid,
		cfg:     cfg,
		cadence: core.NewCadence(cfg.StepFrames),
		logger:  logger,
	}
}

// UseSlots enables save/load commands.
func (c *Controller) UseSlots(s Slots) { c.slots = s }

// UseObserver attaches an activity observer.
func (c *Controller) UseObserver(o Observer) { c.observer = o }

// Grid returns the driven grid.
func (c *Controller) Grid() *life.Grid { return c.grid }

// State returns the current run state.
func (c *Controller) State() State { return c.state }

// View returns the presentation state.
func (c *Controller) View() View { return c.view }

// Status summarizes the controller.
func (c *Controller) Status() Status {
	return Status{
		State:      c.state,
		Generation: c.grid.Generation(),
		Population: c.grid.Population(),
		Size:       c.grid.Size(),
		StepFrames: c.cadence.Frames(),
		View:       c.view,
	}
}

// Frame runs the input and simulation phases of one frame: every command is
// dispatched in order, then at most one scheduled step runs. It returns false
// once a quit command has been seen.
func (c *Controller) Frame(cmds []Command) bool {
	for _, cmd := range cmds {
		c.Dispatch(cmd)
		if c.quit {
			return false
		}
	}
	if c.state == Running && c.cadence.Tick() {
		c.step()
	}
	return true
}

// Flush drains the dirty set for the render phase. It returns nil when
// nothing changed.
func (c *Controller) Flush() []core.Point {
	pts := c.grid.Tracker().Drain()
	if len(pts) > 0 && c.observer != nil {
		c.observer.Flushed(len(pts))
	}
	return pts
}

// Dispatch applies a single command.
func (c *Controller) Dispatch(cmd Command) {
	switch cmd.Kind {
	case KindToggleRun:
		if c.state == Running {
			c.setState(Paused)
		} else {
			c.setState(Running)
		}
	case KindStep:
		c.step()
	case KindReset:
		c.grid.Reset()
	case KindCycleDrawMode:
		c.view.Mode = c.view.Mode.Next(cmd.Reverse)
		c.grid.Tracker().MarkAll()
	case KindSwapColors:
		c.view.Swapped = !c.view.Swapped
		c.grid.Tracker().MarkAll()
	case KindSlot:
		c.slot(cmd.Slot, cmd.Save)
	case KindClick:
		c.click(cmd.X, cmd.Y)
	case KindRandomize:
		pattern.Noise(c.grid, cmd.Seed, c.cfg.Noise)
	case KindToggleHUD:
		c.view.HUD = !c.view.HUD
	case KindQuit:
		c.quit = true
	case KindNone:
	default:
		c.logger.Debug("ignoring unknown command", slog.Int("kind", int(cmd.Kind)))
	}
}

// Start switches to Running.
func (c *Controller) Start() { c.setState(Running) }

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	if s == Running {
		c.cadence.Restart()
	}
	c.logger.Debug("simulation state changed", slog.String("state", s.String()))
	if c.observer != nil {
		c.observer.StateChanged(s)
	}
}

func (c *Controller) step() {
	changed := c.grid.Step()
	if c.observer != nil {
		c.observer.Stepped(changed, c.grid.Population())
	}
}

func (c *Controller) slot(slot int, save bool) {
	if c.slots == nil {
		c.logger.Debug("slot command without storage", slog.Int("slot", slot))
		return
	}
	if save {
		if err := c.slots.Save(slot, c.grid); err != nil {
			c.logger.Error("save failed", slog.Int("slot", slot), slog.String("error", err.Error()))
		}
		return
	}
	c.slots.Load(slot, c.grid)
	c.setState(Paused)
}

func (c *Controller) click(px, py int) {
	if c.state == Running && c.cfg.PauseOnEdit {
		c.setState(Paused)
	}
	if px < 0 || py < 0 {
		return
	}
	c.grid.Toggle(px/c.cfg.Footprint, py/c.cfg.Footprint)
}
