package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single cell by column and row.
type Point struct {
	X int
	Y int
}

// Board is the read-only view renderers need: dimensions plus the current
// row-major cell plane (0 or 1 per cell).
type Board interface {
	Size() Size
	Cells() []uint8
}
