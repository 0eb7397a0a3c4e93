//go:build ebiten

package render

import (
	"cgol/internal/core"
	"cgol/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter keeps a persistent canvas and repaints only the cells it is told
// about. The canvas survives between frames, so an empty flush costs nothing.
type Painter struct {
	layout Layout
	size   core.Size
	canvas *ebiten.Image
}

// NewPainter allocates a canvas for a grid of the given size.
func NewPainter(size core.Size, layout Layout) *Painter {
	w, h := layout.Surface(size)
	p := &Painter{layout: layout, size: size, canvas: ebiten.NewImage(w, h)}
	p.canvas.Fill(DefaultPalette().Background)
	return p
}

// Paint redraws the listed cells from the board's current plane.
func (p *Painter) Paint(b core.Board, dirty []core.Point, mode sim.DrawMode, pal Palette) {
	if len(dirty) == 0 {
		return
	}
	cells := b.Cells()
	half := float32(p.layout.normalized().CellSize) / 2
	for _, pt := range dirty {
		if !p.size.Contains(pt.X, pt.Y) {
			continue
		}
		fr := p.layout.FootprintRect(pt.X, pt.Y)
		vector.DrawFilledRect(p.canvas, float32(fr.Min.X), float32(fr.Min.Y), float32(fr.Dx()), float32(fr.Dy()), pal.Background, false)

		clr := pal.Color(cells[p.size.Index(pt.X, pt.Y)] != 0)
		r := p.layout.CellRect(pt.X, pt.Y, mode)
		if mode == sim.DrawCircle {
			vector.DrawFilledCircle(p.canvas, float32(r.Min.X)+half, float32(r.Min.Y)+half, half, clr, true)
			continue
		}
		vector.DrawFilledRect(p.canvas, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
	}
}

// Draw copies the canvas onto dst.
func (p *Painter) Draw(dst *ebiten.Image) {
	dst.DrawImage(p.canvas, nil)
}
