//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"game-of-life/internal/stats"
)

// OverlaySource supplies the population history and status line.
type OverlaySource interface {
	Stats() *stats.Population
	Status() (string, bool)
}

// Overlay draws the statistics chart and the status line over the board.
type Overlay struct {
	src   OverlaySource
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src OverlaySource) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

const (
	chartWidth   = 180.0
	chartHeight  = 60.0
	chartPadding = 8.0
)

// Draw renders the overlay onto the provided screen, within a board of the
// given pixel size.
func (o *Overlay) Draw(screen *ebiten.Image, boardW, boardH int) {
	if msg, ok := o.src.Status(); ok {
		o.drawStatus(screen, msg, boardW)
	}
	pop := o.src.Stats()
	if pop.Visible() && pop.HasData() {
		o.drawChart(screen, pop, boardH)
	}
}

func (o *Overlay) drawStatus(screen *ebiten.Image, msg string, boardW int) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	w := math.Min(float64(bounds.Dx())+2*chartPadding, float64(boardW))
	o.drawRect(screen, 0, 0, w, float64(bounds.Dy())+2*chartPadding, color.RGBA{R: 0, G: 0, B: 0, A: 170})
	text.Draw(screen, msg, face, int(chartPadding), int(chartPadding)+bounds.Dy(), color.RGBA{R: 240, G: 240, B: 240, A: 255})
}

func (o *Overlay) drawChart(screen *ebiten.Image, pop *stats.Population, boardH int) {
	boxW := chartWidth + 2*chartPadding
	boxH := chartHeight + 3*chartPadding + 13
	top := float64(boardH) - boxH
	if top < 0 {
		top = 0
	}
	o.drawRect(screen, 0, top, boxW, boxH, color.RGBA{R: 0, G: 0, B: 0, A: 150})

	cur, _ := pop.Current()
	hi, _ := pop.Max()
	label := fmt.Sprintf("pop %d  max %d", cur, hi)
	if dir, ok := pop.Trend(10); ok {
		label += "  " + trendArrow(dir)
	}
	text.Draw(screen, label, basicfont.Face7x13, int(chartPadding), int(top+chartPadding)+11, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	originX := chartPadding
	originY := top + 2*chartPadding + 13
	pts := sparkline(pop.History(), chartWidth, chartHeight)
	col := color.RGBA{R: 90, G: 200, B: 120, A: 230}
	for i := 1; i < len(pts); i++ {
		o.drawLine(screen, originX+pts[i-1].X, originY+pts[i-1].Y, originX+pts[i].X, originY+pts[i].Y, 1.5, col)
	}
}

func trendArrow(dir int) string {
	switch {
	case dir > 0:
		return "up"
	case dir < 0:
		return "down"
	}
	return "flat"
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
