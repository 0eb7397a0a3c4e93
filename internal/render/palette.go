package render

import "image/color"

// Palette holds the three colours used to paint the grid.
type Palette struct {
	Background color.RGBA
	Off        color.RGBA
	On         color.RGBA
}

// DefaultPalette is white cells on black over a grey background.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 64, G: 64, B: 64, A: 255},
		Off:        color.RGBA{A: 255},
		On:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Swapped exchanges the on and off colours when swap is set.
func (p Palette) Swapped(swap bool) Palette {
	if swap {
		p.On, p.Off = p.Off, p.On
	}
	return p
}

// Color returns the colour for a cell state.
func (p Palette) Color(active bool) color.RGBA {
	if active {
		return p.On
	}
	return p.Off
}
