//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads: the values to show and the adjustable
// controls. Setters are discovered with type assertions.
type Source interface {
	core.ParameterProvider
	core.ParameterControlsProvider
}

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	src      Source
	width    int
	title    string
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []control
	offsetX  int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// control is one +/- row. value is NaN until the snapshot provides it.
type control struct {
	core.ParameterControl
	value float64
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
)

// NewHUD constructs a HUD with the given title and panel width.
func NewHUD(src Source, title string, width int) *HUD {
	if title == "" {
		title = "Controls"
	}
	h := &HUD{src: src, width: max(width, 0), title: title}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.intSetter, _ = src.(core.IntParameterSetter)
	h.floatSetter, _ = src.(core.FloatParameterSetter)
	for i, c := range src.ParameterControls() {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.controls = append(h.controls, control{ParameterControl: c, value: math.NaN(), top: top, minus: minus, plus: plus})
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles clicks. It reports whether
// the click landed on the panel.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	h.snapshot = h.src.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.value = math.NaN()
		if p, ok := h.snapshot.Lookup(c.Key); ok {
			if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
				c.value = v
			}
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return false
	}
	pt := image.Pt(mx-offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			h.adjust(c, -1)
		case pt.In(c.plus):
			h.adjust(c, 1)
		}
	}
	return true
}

// target returns the value one step in dir, or false when the control is
// unset, has no setter or is already at its bound.
func (h *HUD) target(c *control, dir int) (float64, bool) {
	if math.IsNaN(c.value) {
		return 0, false
	}
	if c.Type == core.ParamTypeInt && h.intSetter == nil || c.Type == core.ParamTypeFloat && h.floatSetter == nil {
		return 0, false
	}
	v := c.value + float64(dir)*c.Step
	if c.HasMin {
		v = math.Max(v, c.Min)
	}
	if c.HasMax {
		v = math.Min(v, c.Max)
	}
	if math.Abs(v-c.value) < 1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) adjust(c *control, dir int) {
	v, ok := h.target(c, dir)
	if !ok {
		return
	}
	switch c.Type {
	case core.ParamTypeInt:
		if h.intSetter.SetIntParameter(c.Key, int(math.Round(v))) {
			c.value = math.Round(v)
		}
	case core.ParamTypeFloat:
		if h.floatSetter.SetFloatParameter(c.Key, v) {
			c.value = v
		}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	h.drawReadouts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *control) {
	face := basicfont.Face7x13
	y := c.top + labelBaseline
	text.Draw(h.panel, c.Label, face, panelPadding, y, textColor)
	value, col := "--", dimColor
	if !math.IsNaN(c.value) {
		value, col = formatValue(c.ParameterControl, c.value), textColor
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, y, col)
	_, canDown := h.target(c, -1)
	_, canUp := h.target(c, 1)
	h.drawButton(c.minus, "-", canDown)
	h.drawButton(c.plus, "+", canUp)
}

// drawReadouts lists the snapshot values that have no control, group by
// group, below the controls.
func (h *HUD) drawReadouts() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	for _, group := range h.snapshot.Groups {
		header := group.Name
		if group.Summary != "" {
			header = fmt.Sprintf("%s (%s)", group.Name, group.Summary)
		}
		drawn := false
		for _, param := range group.Params {
			if h.hasControl(param.Key) {
				continue
			}
			if !drawn {
				text.Draw(h.panel, header, face, panelPadding, y, titleColor)
				y += readoutLine
				drawn = true
			}
			text.Draw(h.panel, param.Label, face, panelPadding, y, dimColor)
			w := text.BoundString(face, param.Value).Dx()
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-w, y, textColor)
			y += readoutLine
		}
		if drawn {
			y += readoutLine / 2
		}
	}
}

func (h *HUD) hasControl(key string) bool {
	for _, c := range h.controls {
		if c.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	b := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	readoutLine    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
