// Package metrics exports simulation activity as prometheus collectors.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cgol/internal/sim"
)

// Recorder implements sim.Observer.
type Recorder struct {
	generations prometheus.Counter
	changed     prometheus.Counter
	flushed     prometheus.Counter
	population  prometheus.Gauge
	running     prometheus.Gauge
}

var _ sim.Observer = (*Recorder)(nil)

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		generations: f.NewCounter(prometheus.CounterOpts{
			Name: "cgol_generations_total",
			Help: "Generations computed",
		}),
		changed: f.NewCounter(prometheus.CounterOpts{
			Name: "cgol_cells_changed_total",
			Help: "Cells flipped by generation steps",
		}),
		flushed: f.NewCounter(prometheus.CounterOpts{
			Name: "cgol_cells_redrawn_total",
			Help: "Cells handed to the renderer",
		}),
		population: f.NewGauge(prometheus.GaugeOpts{
			Name: "cgol_population",
			Help: "Active cells after the last step",
		}),
		running: f.NewGauge(prometheus.GaugeOpts{
			Name: "cgol_running",
			Help: "1 while the simulation runs automatically",
		}),
	}
}

func (r *Recorder) Stepped(changed, population int) {
	r.generations.Inc()
	r.changed.Add(float64(changed))
	r.population.Set(float64(population))
}

func (r *Recorder) Flushed(cells int) {
	r.flushed.Add(float64(cells))
}

func (r *Recorder) StateChanged(s sim.State) {
	if s == sim.Running {
		r.running.Set(1)
		return
	}
	r.running.Set(0)
}

// Serve exposes gatherer on addr under /metrics until ctx is done.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	if logger != nil {
		logger.Info("metrics listening", slog.String("addr", addr))
	}

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "metrics server on %s", addr)
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return errors.Wrap(srv.Shutdown(shutdown), "shutdown metrics server")
	}
}
