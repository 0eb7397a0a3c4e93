package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cgol/internal/life"
)

var (
	liveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

func newShowCmd(c *cli) *cobra.Command {
	var slot int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a slot or pattern to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, _, closer, err := c.openGrid(slot)
			if err != nil {
				return err
			}
			defer closer.Close()

			title := fmt.Sprintf("pattern %s", c.cfg.Pattern)
			if slot > 0 {
				title = fmt.Sprintf("slot %d", slot)
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("%s  %dx%d  pop %d",
				title, grid.Size().W, grid.Size().H, grid.Population())))
			fmt.Fprintln(cmd.OutOrStdout(), frameStyle.Render(renderGrid(grid)))
			return nil
		},
	}
	cmd.Flags().IntVar(&slot, "slot", 0, "slot to show (0 = configured pattern)")
	return cmd
}

// renderGrid draws one character per cell, one line per row.
func renderGrid(g *life.Grid) string {
	size := g.Size()
	live := liveStyle.Render("#")
	dead := deadStyle.Render(".")
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < size.W; x++ {
			if g.Active(x, y) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
