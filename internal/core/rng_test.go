package core

import "testing"

func TestRNGFillDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(9).Fill(a, 0.5)
	NewRNG(9).Fill(b, 0.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
		if a[i] > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, a[i])
		}
	}
}

func TestRNGFillDensityBounds(t *testing.T) {
	buf := []uint8{1, 1, 1, 1}
	NewRNG(1).Fill(buf, 0)
	for i, c := range buf {
		if c != 0 {
			t.Fatalf("density 0 left cell %d set", i)
		}
	}
	NewRNG(1).Fill(buf, 1)
	for i, c := range buf {
		if c != 1 {
			t.Fatalf("density 1 left cell %d clear", i)
		}
	}
}
