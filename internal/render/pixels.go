package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"cgol/internal/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Snapshot renders the board at one pixel per cell.
func Snapshot(b core.Board, p Palette) *image.RGBA {
	s := b.Size()
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	fillBinaryRGBA(img.Pix, b.Cells(), p.On, p.Off)
	return img
}

// WritePNG encodes a one-pixel-per-cell snapshot of b to w.
func WritePNG(w io.Writer, b core.Board, p Palette) error {
	if err := png.Encode(w, Snapshot(b, p)); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}
