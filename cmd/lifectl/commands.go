package main

import (
	"flag"
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cgol/internal/app"
	"cgol/internal/life"
	"cgol/internal/pattern"
	"cgol/internal/persist"
)

// cli carries state shared by every subcommand.
type cli struct {
	cfg    *app.Config
	flags  *flag.FlagSet
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: app.NewConfig(), flags: flag.NewFlagSet("lifectl", flag.ContinueOnError)}
	c.cfg.Bind(c.flags)

	root := &cobra.Command{
		Use:          "lifectl",
		Short:        "Run, inspect and export Game of Life slots",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.Overlay(c.flags, cmd.Flags().Changed); err != nil {
				return err
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			c.logger = app.NewLogger(cmd.ErrOrStderr(), c.cfg.Verbose)
			return nil
		},
	}
	root.PersistentFlags().AddGoFlagSet(c.flags)

	root.AddCommand(newRunCmd(c))
	root.AddCommand(newShowCmd(c))
	root.AddCommand(newExportCmd(c))
	return root
}

// openGrid builds a grid from a slot when slot is positive, otherwise from
// the configured pattern. The returned closer releases the slot store.
func (c *cli) openGrid(slot int) (*life.Grid, *persist.Gateway, io.Closer, error) {
	store, closer, err := app.OpenStore(c.cfg, c.logger)
	if err != nil {
		return nil, nil, closer, err
	}
	gw := persist.NewGateway(store, c.logger)
	grid := life.New(c.cfg.Width, c.cfg.Height)
	if slot > 0 {
		gw.Load(slot, grid)
		return grid, gw, closer, nil
	}
	if !pattern.Named(grid, c.cfg.Pattern, c.cfg.Seed) {
		closer.Close()
		return nil, nil, nil, errors.Errorf("unknown pattern %q", c.cfg.Pattern)
	}
	return grid, gw, closer, nil
}
