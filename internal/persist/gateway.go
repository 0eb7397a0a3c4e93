package persist

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"cgol/internal/life"
)

// Gateway moves grid patterns between a Grid and a slot Store.
type Gateway struct {
	store  Store
	logger *slog.Logger
}

// NewGateway wraps store. A nil logger discards output.
func NewGateway(store Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{store: store, logger: logger}
}

// Save writes the grid's current pattern to slot.
func (g *Gateway) Save(slot int, grid *life.Grid) error {
	data, err := Encode(grid.Pattern())
	if err != nil {
		return err
	}
	if err := g.store.Save(slot, data); err != nil {
		return errors.Wrapf(err, "[Gateway.Save] slot %d", slot)
	}
	g.logger.Info("saved slot", slog.Int("slot", slot), slog.Int("population", grid.Population()))
	return nil
}

// Load replaces the grid with the pattern stored in slot. When the slot is
// missing or unreadable the grid is reset instead and false is returned.
// Either way every cell is marked for redraw.
func (g *Gateway) Load(slot int, grid *life.Grid) bool {
	data, err := g.store.Load(slot)
	if err != nil {
		g.logger.Warn("slot unavailable, clearing grid", slog.Int("slot", slot), slog.String("error", err.Error()))
		grid.Reset()
		return false
	}
	p, err := Decode(data)
	if err != nil {
		g.logger.Warn("slot unreadable, clearing grid", slog.Int("slot", slot), slog.String("error", err.Error()))
		grid.Reset()
		return false
	}
	grid.Replace(p)
	g.logger.Info("loaded slot", slog.Int("slot", slot), slog.Int("population", grid.Population()))
	return true
}
