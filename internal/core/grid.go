package core

import "fmt"

// Len returns the number of cells covered by the size.
func (s Size) Len() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside [0,W) x [0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the row-major slice index for (x, y). Coordinates outside the
// grid are a programming error and panic.
func (s Size) Index(x, y int) int {
	if !s.Contains(x, y) {
		panic(fmt.Sprintf("core: coordinate (%d,%d) outside %dx%d grid", x, y, s.W, s.H))
	}
	return y*s.W + x
}

// Point converts a row-major index back to coordinates.
func (s Size) Point(i int) Point {
	return Point{X: i % s.W, Y: i / s.W}
}

// Clamp normalizes non-positive dimensions to 1 so grids are never empty.
func (s Size) Clamp() Size {
	if s.W <= 0 {
		s.W = 1
	}
	if s.H <= 0 {
		s.H = 1
	}
	return s
}
