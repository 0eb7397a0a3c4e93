package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"cgol/internal/life"
	"cgol/internal/sim"
)

func TestRecorderFollowsController(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	g := life.New(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)
	c := sim.New(g, sim.Config{Footprint: 1}, nil)
	c.UseObserver(rec)

	c.Frame([]sim.Command{sim.ToggleRun()})
	require.Equal(t, 1.0, testutil.ToFloat64(rec.running))
	require.Len(t, c.Flush(), 5)

	c.Frame(nil)
	c.Flush()
	c.Frame([]sim.Command{sim.ToggleRun()})

	require.Equal(t, 0.0, testutil.ToFloat64(rec.running))
	require.Equal(t, 2.0, testutil.ToFloat64(rec.generations))
	require.Equal(t, 8.0, testutil.ToFloat64(rec.changed))
	require.Equal(t, 9.0, testutil.ToFloat64(rec.flushed))
	require.Equal(t, 3.0, testutil.ToFloat64(rec.population))
}

func TestRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)
	require.Panics(t, func() { NewRecorder(reg) })

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, Serve(ctx, "127.0.0.1:0", prometheus.NewRegistry(), nil))
}
