package pattern

import (
	"slices"
	"testing"

	"cgol/internal/life"
)

func TestGliderTravels(t *testing.T) {
	g := life.New(10, 10)
	Stamp(g, Glider, 1, 1)
	before := g.Population()
	for i := 0; i < 4; i++ {
		g.Step()
	}
	if g.Population() != before {
		t.Fatalf("glider population %d after four steps, expected %d", g.Population(), before)
	}
	shifted := life.New(10, 10)
	Stamp(shifted, Glider, 2, 2)
	if !slices.Equal(g.Cells(), shifted.Cells()) {
		t.Fatal("glider did not move one cell diagonally after four generations")
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g := life.New(3, 3)
	Stamp(g, Block, 2, 2)
	if g.Population() != 1 || !g.Active(2, 2) {
		t.Fatalf("clipped block population %d", g.Population())
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := life.New(20, 20)
	b := life.New(20, 20)
	Random(a, 7, 0.3)
	Random(b, 7, 0.3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Random is not deterministic for equal seeds")
	}
	if a.Population() == 0 || a.Population() == a.Len() {
		t.Fatalf("density 0.3 produced population %d of %d", a.Population(), a.Len())
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := life.New(30, 30)
	b := life.New(30, 30)
	Noise(a, 11, DefaultNoiseConfig())
	Noise(b, 11, DefaultNoiseConfig())
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Noise is not deterministic for equal seeds")
	}
	if a.Tracker().Pending() != a.Len() {
		t.Fatal("Noise did not request a full redraw")
	}
}

func TestNamed(t *testing.T) {
	g := life.New(8, 8)
	for _, name := range []string{"empty", "random", "noise", "glider", "blinker", "block"} {
		if !Named(g, name, 1) {
			t.Fatalf("Named rejected %q", name)
		}
	}
	if g.Population() != 4 {
		t.Fatalf("block fill population %d", g.Population())
	}
	if Named(g, "spaceship", 1) {
		t.Fatal("Named accepted an unknown pattern")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"scale": "0.5", "threshold": "-0.1", "octaves": "x"})
	if c.Scale != 0.5 || c.Threshold != -0.1 || c.Octaves != DefaultNoiseConfig().Octaves {
		t.Fatalf("FromMap gave %+v", c)
	}
}
