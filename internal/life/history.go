package life

import (
	"crypto/md5"
	"encoding/hex"
)

// History remembers hashes of recent generations to spot still lifes and
// short oscillators.
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps the last depth hashes. Depth below 1 is raised to 1.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{depth: depth}
}

// Observe records the grid's current state and reports whether it matches one
// of the remembered states.
func (h *History) Observe(g *Grid) bool {
	sum := Hash(g)
	repeat := false
	for _, prior := range h.hashes {
		if prior == sum {
			repeat = true
			break
		}
	}
	h.hashes = append(h.hashes, sum)
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return repeat
}

// Clear forgets all remembered states.
func (h *History) Clear() { h.hashes = h.hashes[:0] }

// Hash returns an MD5 digest of the grid's current plane.
func Hash(g *Grid) string {
	sum := md5.Sum(g.cur)
	return hex.EncodeToString(sum[:])
}
