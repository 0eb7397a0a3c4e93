package life

import "cgol/internal/core"

// Tracker records which cells changed since the last render flush. Marks are
// de-duplicated so a cell appears at most once per Drain.
type Tracker struct {
	size    core.Size
	marked  []bool
	pending []int
}

// NewTracker allocates a tracker for a grid of the given size.
func NewTracker(size core.Size) *Tracker {
	size = size.Clamp()
	return &Tracker{size: size, marked: make([]bool, size.Len())}
}

// Mark adds the cell at (x, y). Marking an already pending cell is a no-op.
func (t *Tracker) Mark(x, y int) {
	t.markIndex(t.size.Index(x, y))
}

func (t *Tracker) markIndex(i int) {
	if t.marked[i] {
		return
	}
	t.marked[i] = true
	t.pending = append(t.pending, i)
}

// MarkAll replaces the pending set with every cell of the grid, in row-major
// order.
func (t *Tracker) MarkAll() {
	t.pending = t.pending[:0]
	for i := range t.marked {
		t.marked[i] = true
		t.pending = append(t.pending, i)
	}
}

// Pending reports how many cells are waiting to be drawn.
func (t *Tracker) Pending() int { return len(t.pending) }

// IsMarked reports whether (x, y) is waiting to be drawn.
func (t *Tracker) IsMarked(x, y int) bool { return t.marked[t.size.Index(x, y)] }

// Drain returns the pending cells and empties the set. It returns nil when
// nothing is pending so callers can skip the render pass entirely.
func (t *Tracker) Drain() []core.Point {
	if len(t.pending) == 0 {
		return nil
	}
	out := make([]core.Point, len(t.pending))
	for n, i := range t.pending {
		out[n] = t.size.Point(i)
		t.marked[i] = false
	}
	t.pending = t.pending[:0]
	return out
}
