package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cgol/internal/render"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		slot   int
		invert bool
	)
	cmd := &cobra.Command{
		Use:   "export <file.png>",
		Short: "Write a slot or pattern as a PNG, one pixel per cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, closer, err := c.openGrid(slot)
			if err != nil {
				return err
			}
			defer closer.Close()

			f, err := os.Create(args[0])
			if err != nil {
				return errors.Wrapf(err, "create %s", args[0])
			}
			if err := render.WritePNG(f, grid, render.DefaultPalette().Swapped(invert)); err != nil {
				f.Close()
				return err
			}
			return errors.Wrapf(f.Close(), "close %s", args[0])
		},
	}
	cmd.Flags().IntVar(&slot, "slot", 0, "slot to export (0 = configured pattern)")
	cmd.Flags().BoolVar(&invert, "invert", false, "swap live and dead colours")
	return cmd
}
