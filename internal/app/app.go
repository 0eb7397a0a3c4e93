//go:build ebiten

package app

import (
	"cgol/internal/render"
	"cgol/internal/sim"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	painter *render.Painter
	hud     *ui.HUD
	palette render.Palette
	width   int
	height  int

	reloads  <-chan int
	seed     int64
	hudShown bool
}

// New constructs a Game driving ctrl with the given layout. reloads may be
// nil; otherwise each received slot is loaded on the next tick.
func New(ctrl *sim.Controller, layout render.Layout, reloads <-chan int, seed int64) *Game {
	size := ctrl.Grid().Size()
	w, h := layout.Surface(size)
	ctrl.Grid().Tracker().MarkAll()
	return &Game{
		ctrl:    ctrl,
		painter: render.NewPainter(size, layout),
		hud:     ui.NewHUD(w),
		palette: render.DefaultPalette(),
		width:   w,
		height:  h,
		reloads: reloads,
		seed:    seed,
	}
}

func (g *Game) nextSeed() int64 {
	g.seed++
	return g.seed
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ebiten.MinimizeWindow()
	}
	cmds := Reloads(g.reloads)
	cmds = append(cmds, pollCommands(g.nextSeed)...)
	if !g.ctrl.Frame(cmds) {
		return ebiten.Termination
	}
	return nil
}

// Draw repaints the cells that changed since the last frame. The screen is
// not cleared between frames, so an empty flush leaves it untouched.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.ctrl.View()
	dirty := g.ctrl.Flush()
	if !needsPresent(len(dirty), view.HUD, g.hudShown) {
		return
	}
	g.painter.Paint(g.ctrl.Grid(), dirty, view.Mode, g.palette.Swapped(view.Swapped))
	g.painter.Draw(screen)
	if view.HUD {
		g.hud.Draw(screen, g.ctrl.Status())
	}
	g.hudShown = view.HUD
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// WindowSize is the surface size in pixels.
func (g *Game) WindowSize() (int, int) { return g.width, g.height }
