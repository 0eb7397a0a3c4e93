package sim

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"cgol/internal/core"
	"cgol/internal/life"
)

// StopReason explains why a headless run ended.
type StopReason string

const (
	StopFrames    StopReason = "frame limit"
	StopQuit      StopReason = "quit"
	StopExtinct   StopReason = "extinction"
	StopStagnant  StopReason = "stagnation"
	StopCancelled StopReason = "cancelled"
)

// RunConfig bounds a headless run.
type RunConfig struct {
	// Frames caps the run; zero runs until another stop condition.
	Frames int
	// FPS paces frames; zero runs as fast as possible.
	FPS int
	// StopWhenStable ends the run on extinction or a repeating state.
	StopWhenStable bool
	// StableDepth is how many past generations are compared.
	StableDepth int
}

// Report summarizes a finished run.
type Report struct {
	Frames     int
	Generation uint64
	Population int
	Redrawn    int
	Reason     StopReason
}

// Runner is the headless frame loop. Each frame drains queued commands,
// runs the controller, flushes the dirty set and waits for the next frame.
type Runner struct {
	ctrl    *Controller
	cfg     RunConfig
	pacer   *core.Pacer
	history *life.History
	logger  *slog.Logger

	// Draw receives each non-empty flush. It may be nil.
	Draw func(pts []core.Point)
}

// NewRunner builds a runner around ctrl.
func NewRunner(ctrl *Controller, cfg RunConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.StableDepth <= 0 {
		cfg.StableDepth = 3
	}
	return &Runner{
		ctrl:    ctrl,
		cfg:     cfg,
		pacer:   core.NewPacer(cfg.FPS),
		history: life.NewHistory(cfg.StableDepth),
		logger:  logger,
	}
}

// Run loops until a stop condition. Commands arriving on cmds are applied at
// the start of the next frame; cmds may be nil.
func (r *Runner) Run(ctx context.Context, cmds <-chan Command) (Report, error) {
	var rep Report
	grid := r.ctrl.Grid()
	lastGen := grid.Generation()
	for {
		if r.cfg.Frames > 0 && rep.Frames >= r.cfg.Frames {
			rep.Reason = StopFrames
			break
		}
		batch := drain(cmds)
		if !r.ctrl.Frame(batch) {
			rep.Reason = StopQuit
			break
		}
		rep.Frames++
		if pts := r.ctrl.Flush(); pts != nil {
			rep.Redrawn += len(pts)
			if r.Draw != nil {
				r.Draw(pts)
			}
		}
		gen := grid.Generation()
		if gen < lastGen || replacesGrid(batch) {
			r.history.Clear()
		}
		if gen != lastGen {
			lastGen = gen
			if reason, stop := r.stable(grid); stop {
				rep.Reason = reason
				break
			}
		}
		if err := r.pacer.Wait(ctx); err != nil {
			rep.Reason = StopCancelled
			r.finish(&rep)
			return rep, errors.Wrap(err, "[Runner.Run] interrupted")
		}
	}
	r.finish(&rep)
	return rep, nil
}

func (r *Runner) stable(grid *life.Grid) (StopReason, bool) {
	if !r.cfg.StopWhenStable {
		return "", false
	}
	if grid.Population() == 0 {
		return StopExtinct, true
	}
	if r.history.Observe(grid) {
		return StopStagnant, true
	}
	return "", false
}

func (r *Runner) finish(rep *Report) {
	grid := r.ctrl.Grid()
	rep.Generation = grid.Generation()
	rep.Population = grid.Population()
	r.logger.Info("run finished",
		slog.Int("frames", rep.Frames),
		slog.Uint64("generation", rep.Generation),
		slog.Int("population", rep.Population),
		slog.String("reason", string(rep.Reason)))
}

// replacesGrid reports whether any command swaps in a new pattern, after
// which earlier states say nothing about stagnation.
func replacesGrid(cmds []Command) bool {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindReset, KindRandomize:
			return true
		case KindSlot:
			if !cmd.Save {
				return true
			}
		}
	}
	return false
}

func drain(cmds <-chan Command) []Command {
	if cmds == nil {
		return nil
	}
	var out []Command
	for {
		select {
		case cmd, ok := <-cmds:
			if !ok {
				return out
			}
			out = append(out, cmd)
		default:
			return out
		}
	}
}
