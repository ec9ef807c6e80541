package render

import (
	"image/color"

	"game-of-life/internal/theme"
)

// MinGridLineCell is the smallest on-screen cell size that still gets grid
// lines; below it the lines would cover the cells.
const MinGridLineCell = 4.0

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

// fillPalette is fillBinaryRGBA with the board colors of a theme palette.
func fillPalette(buf []byte, cells []uint8, p theme.Palette) {
	fillBinaryRGBA(buf, cells, p.Alive, p.Dead)
}

// gridLineOffsets returns the pixel offsets of the n+1 lines bounding n cells
// of the given size, or nil when the cells are too small for lines.
func gridLineOffsets(n int, cell float64) []float64 {
	if n <= 0 || cell < MinGridLineCell {
		return nil
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) * cell
	}
	return out
}
