// Package life implements Conway's Game of Life on a fixed grid with a dead
// border and change tracking for incremental rendering.
package life

import (
	"cgol/internal/core"
)

// Cell is a snapshot of one grid position. Previous is the value neighbor
// counts read during a generation step.
type Cell struct {
	Active   bool
	Previous bool
}

// Pattern is a row-major set of active flags. Rows may be ragged; missing
// entries count as inactive.
type Pattern [][]bool

// Grid holds two planes of binary cells: cur is written by steps and edits,
// prev is the frozen snapshot neighbor counts read from.
type Grid struct {
	size  core.Size
	n     int
	cur   []uint8
	prev  []uint8
	dirty *Tracker

	// edited is set when cur changed outside a step, so the next step must
	// refresh its snapshot before counting.
	edited     bool
	generation uint64
}

// New returns an all-inactive grid with the provided dimensions.
func New(w, h int) *Grid {
	size := core.Size{W: w, H: h}.Clamp()
	n := size.Len()
	return &Grid{
		size:  size,
		n:     n,
		cur:   make([]uint8, n),
		prev:  make([]uint8, n),
		dirty: NewTracker(size),
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Len returns the cached cell count.
func (g *Grid) Len() int { return g.n }

// Cells exposes the current plane, one byte (0 or 1) per cell.
func (g *Grid) Cells() []uint8 { return g.cur }

// Tracker returns the dirty set fed by steps and edits.
func (g *Grid) Tracker() *Tracker { return g.dirty }

// Generation returns the number of steps since construction or the last reset.
func (g *Grid) Generation() uint64 { return g.generation }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool { return g.size.Contains(x, y) }

// At returns the cell at (x, y). It panics for out-of-range coordinates.
func (g *Grid) At(x, y int) Cell {
	i := g.size.Index(x, y)
	return Cell{Active: g.cur[i] == 1, Previous: g.prev[i] == 1}
}

// Active reports the current state of (x, y). It panics for out-of-range
// coordinates.
func (g *Grid) Active(x, y int) bool { return g.cur[g.size.Index(x, y)] == 1 }

// Set assigns the current state of (x, y) and marks it dirty when it changes.
// It panics for out-of-range coordinates.
func (g *Grid) Set(x, y int, active bool) {
	i := g.size.Index(x, y)
	v := boolToCell(active)
	if g.cur[i] == v {
		return
	}
	g.cur[i] = v
	g.edited = true
	g.dirty.markIndex(i)
}

// Toggle flips (x, y) and marks it dirty. Coordinates outside the grid are
// ignored and reported as false.
func (g *Grid) Toggle(x, y int) bool {
	if !g.size.Contains(x, y) {
		return false
	}
	i := y*g.size.W + x
	g.cur[i] ^= 1
	g.edited = true
	g.dirty.markIndex(i)
	return true
}

// Population returns the number of active cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cur {
		count += int(c)
	}
	return count
}

// Reset deactivates every cell in both planes and requests a full redraw.
func (g *Grid) Reset() {
	clear(g.cur)
	clear(g.prev)
	g.edited = false
	g.generation = 0
	g.dirty.MarkAll()
}

// Replace loads p into both planes. Cells outside p are inactive and entries
// of p outside the grid are dropped. A full redraw is requested.
func (g *Grid) Replace(p Pattern) {
	w, h := g.size.W, g.size.H
	for y := 0; y < h; y++ {
		var row []bool
		if y < len(p) {
			row = p[y]
		}
		for x := 0; x < w; x++ {
			v := uint8(0)
			if x < len(row) && row[x] {
				v = 1
			}
			g.cur[y*w+x] = v
		}
	}
	copy(g.prev, g.cur)
	g.edited = false
	g.generation = 0
	g.dirty.MarkAll()
}

// Pattern copies the current plane into a height x width pattern.
func (g *Grid) Pattern() Pattern {
	w := g.size.W
	p := make(Pattern, g.size.H)
	for y := range p {
		row := make([]bool, w)
		for x := range row {
			row[x] = g.cur[y*w+x] == 1
		}
		p[y] = row
	}
	return p
}

// Step advances the grid by one generation and returns how many cells flipped.
// Every neighbor count reads the snapshot plane; results go to the current
// plane, and the snapshot catches up only after the full pass.
func (g *Grid) Step() int {
	if g.edited {
		copy(g.prev, g.cur)
		g.edited = false
	}
	w, h := g.size.W, g.size.H
	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			alive := g.cur[idx] == 1
			next := Next(alive, g.neighbors(x, y))
			if next == alive {
				continue
			}
			g.cur[idx] = boolToCell(next)
			g.dirty.markIndex(idx)
			changed++
		}
	}
	copy(g.prev, g.cur)
	g.generation++
	return changed
}

// neighbors counts active snapshot cells around (x, y). Positions past the
// edge are not counted.
func (g *Grid) neighbors(x, y int) int {
	w := g.size.W
	minX, maxX := max(0, x-1), min(w-1, x+1)
	minY, maxY := max(0, y-1), min(g.size.H-1, y+1)
	count := 0
	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			count += int(g.prev[ny*w+nx])
		}
	}
	return count
}

func boolToCell(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
