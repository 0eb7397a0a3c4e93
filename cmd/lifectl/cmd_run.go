package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"cgol/internal/metrics"
	"cgol/internal/sim"
)

type runOptions struct {
	frames int
	fps    int
	load   int
	save   int
	stable bool
}

func newRunCmd(c *cli) *cobra.Command {
	opts := runOptions{frames: 100}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless",
		Long: `Run the simulation without a window for a number of frames, starting from
a saved slot or a named pattern. Ctrl-C stops the run early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rep, err := c.run(ctx, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "frames=%d generation=%d population=%d redrawn=%d reason=%q\n",
				rep.Frames, rep.Generation, rep.Population, rep.Redrawn, rep.Reason)
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "frames to run (0 = until stopped)")
	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "frame rate (0 = as fast as possible)")
	cmd.Flags().IntVar(&opts.load, "load", opts.load, "start from this slot")
	cmd.Flags().IntVar(&opts.save, "save", opts.save, "save the final grid to this slot")
	cmd.Flags().BoolVar(&opts.stable, "stop-when-stable", opts.stable, "stop on extinction or a repeating state")
	return cmd
}

func (c *cli) run(ctx context.Context, opts runOptions) (sim.Report, error) {
	grid, gw, closer, err := c.openGrid(opts.load)
	if err != nil {
		return sim.Report{}, err
	}
	defer closer.Close()

	ctrl := sim.New(grid, c.cfg.Sim(), c.logger)
	ctrl.UseSlots(gw)
	reg := prometheus.NewRegistry()
	ctrl.UseObserver(metrics.NewRecorder(reg))
	ctrl.Start()

	runner := sim.NewRunner(ctrl, sim.RunConfig{
		Frames:         opts.frames,
		FPS:            opts.fps,
		StopWhenStable: opts.stable,
	}, c.logger)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	var rep sim.Report
	g.Go(func() error {
		defer cancel()
		var err error
		rep, err = runner.Run(runCtx, nil)
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if c.cfg.MetricsAddr != "" {
		g.Go(func() error {
			return metrics.Serve(runCtx, c.cfg.MetricsAddr, reg, c.logger)
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}

	if opts.save > 0 {
		if err := gw.Save(opts.save, grid); err != nil {
			return rep, err
		}
	}
	return rep, nil
}
