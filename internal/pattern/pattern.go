// Package pattern seeds grids with well-known shapes and random fills.
package pattern

import (
	"strconv"

	"github.com/aquilax/go-perlin"

	"cgol/internal/core"
	"cgol/internal/life"
)

var (
	// Glider travels one cell diagonally (down and right) every four generations.
	Glider = life.Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	// Blinker is a period-2 horizontal oscillator.
	Blinker = life.Pattern{
		{true, true, true},
	}
	// Block is the smallest still life.
	Block = life.Pattern{
		{true, true},
		{true, true},
	}
)

// Stamp copies the active cells of p onto g with its top-left corner at
// (ox, oy). Parts that fall outside the grid are clipped; inactive entries
// leave the grid untouched.
func Stamp(g *life.Grid, p life.Pattern, ox, oy int) {
	for y, row := range p {
		for x, active := range row {
			if active && g.InBounds(ox+x, oy+y) {
				g.Set(ox+x, oy+y, true)
			}
		}
	}
}

// Random replaces g with cells active at probability density.
func Random(g *life.Grid, seed int64, density float64) {
	size := g.Size()
	buf := make([]uint8, size.Len())
	core.NewRNG(seed).Fill(buf, density)
	g.Replace(fromPlane(size, buf))
}

// NoiseConfig tunes the perlin fill.
type NoiseConfig struct {
	Scale     float64
	Threshold float64
	Alpha     float64
	Beta      float64
	Octaves   int32
}

// DefaultNoiseConfig returns blob sizes that suit a 50x50 board.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{Scale: 0.15, Threshold: 0.05, Alpha: 2, Beta: 2, Octaves: 3}
}

// FromMap populates a NoiseConfig from a string map.
func FromMap(cfg map[string]string) NoiseConfig {
	c := DefaultNoiseConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Octaves = int32(parsed)
		}
	}
	return c
}

// Noise replaces g with the cells whose perlin noise value exceeds the
// threshold, giving organic clusters instead of uniform static.
func Noise(g *life.Grid, seed int64, cfg NoiseConfig) {
	size := g.Size()
	p := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, seed)
	buf := make([]uint8, size.Len())
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if p.Noise2D(float64(x)*cfg.Scale, float64(y)*cfg.Scale) > cfg.Threshold {
				buf[y*size.W+x] = 1
			}
		}
	}
	g.Replace(fromPlane(size, buf))
}

// Named returns a seeded fill by name: "empty", "random", "noise", "glider",
// "blinker" or "block". Shapes are placed near the centre.
func Named(g *life.Grid, name string, seed int64) bool {
	size := g.Size()
	switch name {
	case "", "empty":
		g.Reset()
	case "random":
		Random(g, seed, 0.25)
	case "noise":
		Noise(g, seed, DefaultNoiseConfig())
	case "glider", "blinker", "block":
		shape := map[string]life.Pattern{"glider": Glider, "blinker": Blinker, "block": Block}[name]
		g.Reset()
		Stamp(g, shape, size.W/2-1, size.H/2-1)
	default:
		return false
	}
	return true
}

func fromPlane(size core.Size, buf []uint8) life.Pattern {
	p := make(life.Pattern, size.H)
	for y := range p {
		row := make([]bool, size.W)
		for x := range row {
			row[x] = buf[y*size.W+x] == 1
		}
		p[y] = row
	}
	return p
}
