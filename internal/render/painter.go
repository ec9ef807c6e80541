//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"game-of-life/internal/theme"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if w == gp.w && h == gp.h && gp.img != nil {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

// Blit uploads the cells of a w*h grid and draws them scaled to cell pixels,
// followed by grid lines when gridLines is set.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h int, p theme.Palette, cell float64, gridLines bool) {
	if len(cells) != w*h || w == 0 || h == 0 {
		return
	}
	gp.resize(w, h)
	fillPalette(gp.buf, cells, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	dst.DrawImage(gp.img, op)

	if gridLines {
		gp.drawLines(dst, w, h, cell, p.GridLine)
	}
}

func (gp *GridPainter) drawLines(dst *ebiten.Image, w, h int, cell float64, col color.RGBA) {
	width := float64(w) * cell
	height := float64(h) * cell
	for _, x := range gridLineOffsets(w, cell) {
		gp.rect(dst, x, 0, 1, height, col)
	}
	for _, y := range gridLineOffsets(h, cell) {
		gp.rect(dst, 0, y, width, 1, col)
	}
}

func (gp *GridPainter) rect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(gp.pixel, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
