// Package render turns grid state into pixels. Layout and palette are plain
// values so they can be shared by the ebiten painter and the PNG exporter.
package render

import (
	"image"

	"cgol/internal/core"
	"cgol/internal/sim"
)

const (
	DefaultCellSize = 14
	DefaultBorder   = 1
)

// Layout places cells on the surface. Each cell owns a footprint of
// CellSize+Border pixels and the surface carries one extra border strip on
// the right and bottom edges.
type Layout struct {
	CellSize int
	Border   int
}

// DefaultLayout returns the stock 14px cell with a 1px border.
func DefaultLayout() Layout {
	return Layout{CellSize: DefaultCellSize, Border: DefaultBorder}
}

func (l Layout) normalized() Layout {
	if l.CellSize <= 0 {
		l.CellSize = 1
	}
	if l.Border < 0 {
		l.Border = 0
	}
	return l
}

// Footprint is the pixel pitch between neighbouring cells.
func (l Layout) Footprint() int {
	l = l.normalized()
	return l.CellSize + l.Border
}

// Surface returns the window size in pixels for a grid of size s.
func (l Layout) Surface(s core.Size) (int, int) {
	l = l.normalized()
	fp := l.Footprint()
	return fp*s.W + l.Border, fp*s.H + l.Border
}

// Origin returns the top-left pixel of cell (x,y).
func (l Layout) Origin(x, y int) image.Point {
	l = l.normalized()
	fp := l.Footprint()
	return image.Pt(x*fp+l.Border, y*fp+l.Border)
}

// FootprintRect is the area a cell clears before it is repainted.
func (l Layout) FootprintRect(x, y int) image.Rectangle {
	o := l.Origin(x, y)
	fp := l.Footprint()
	return image.Rect(o.X, o.Y, o.X+fp, o.Y+fp)
}

// CellRect returns the painted bounds of cell (x,y) in the given mode. For
// DrawCircle it is the circle's bounding square.
func (l Layout) CellRect(x, y int, mode sim.DrawMode) image.Rectangle {
	l = l.normalized()
	o := l.Origin(x, y)
	if mode == sim.DrawFill {
		fp := l.Footprint()
		return image.Rect(o.X, o.Y, o.X+fp, o.Y+fp)
	}
	return image.Rect(o.X, o.Y, o.X+l.CellSize, o.Y+l.CellSize)
}
