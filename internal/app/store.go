package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"cgol/internal/life"
	"cgol/internal/persist"
	"cgol/internal/sim"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the configured slot store. The returned closer releases
// it and is never nil.
func OpenStore(cfg *Config, logger *slog.Logger) (persist.Store, io.Closer, error) {
	switch cfg.Store {
	case StoreBadger:
		bc := persist.DefaultBadgerConfig(filepath.Join(cfg.SaveDir, "slots.db"))
		bc.Logger = logger
		db, err := persist.OpenBadger(bc)
		if err != nil {
			return nil, nopCloser{}, err
		}
		return db, db, nil
	case StoreFile, "":
		if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
			return nil, nopCloser{}, errors.Wrapf(err, "[OpenStore] failed to create save dir: %s", cfg.SaveDir)
		}
		return persist.NewFileStore(cfg.SaveDir), nopCloser{}, nil
	default:
		return nil, nopCloser{}, errors.Errorf("[OpenStore] unknown store %q", cfg.Store)
	}
}

// WatchedSlots saves through a gateway and silences the watcher for the
// slot being written, so a save is not read straight back.
type WatchedSlots struct {
	*persist.Gateway
	Watcher *persist.Watcher
}

var _ sim.Slots = WatchedSlots{}

func (s WatchedSlots) Save(slot int, g *life.Grid) error {
	if s.Watcher != nil {
		s.Watcher.Suppress(slot)
	}
	return s.Gateway.Save(slot, g)
}

// Reloads drains pending slot notifications without blocking and turns each
// into a load command.
func Reloads(events <-chan int) []sim.Command {
	var cmds []sim.Command
	for {
		select {
		case slot, ok := <-events:
			if !ok {
				return cmds
			}
			cmds = append(cmds, sim.LoadSlot(slot))
		default:
			return cmds
		}
	}
}

// NewLogger builds the text logger used by the binaries.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
