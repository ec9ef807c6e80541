// Package term draws a session in a terminal with tcell. Each cell takes two
// columns so the board keeps its aspect ratio; the bottom row is a status
// bar.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"game-of-life/internal/app"
	"game-of-life/internal/session"
	"game-of-life/pkg/sims/life"
)

// CellColumns is the number of terminal columns per cell.
const CellColumns = 2

// Terminal renders a session on a tcell screen and feeds input back to it.
type Terminal struct {
	screen tcell.Screen
	ctl    *app.Controller
	sess   *session.Session
	log    log.Interface

	mouseDown  bool
	pressX     int
	pressY     int
	pressValid bool

	statusShown bool
}

// New wraps an initialised screen. Mouse reporting is enabled.
func New(screen tcell.Screen, ctl *app.Controller, logger log.Interface) *Terminal {
	if logger == nil {
		logger = log.Log
	}
	screen.EnableMouse()
	return &Terminal{screen: screen, ctl: ctl, sess: ctl.Session(), log: logger}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw paints the visible part of the board and the status bar.
func (t *Terminal) Draw() {
	t.screen.Clear()
	sw, sh := t.screen.Size()
	grid := t.sess.Grid()
	pal := t.sess.Palette()
	alive := tcell.StyleDefault.Background(toColor(pal.Alive)).Foreground(toColor(pal.Dead))
	dead := tcell.StyleDefault.Background(toColor(pal.Dead)).Foreground(toColor(pal.GridLine))

	rows := min(grid.Height(), sh-1)
	cols := min(grid.Width(), sw/CellColumns)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style, mark := dead, ' '
			if grid.Cell(x, y) == life.Alive {
				style = alive
			} else if t.sess.View().GridLines {
				mark = '·'
			}
			t.screen.SetContent(x*CellColumns, y, mark, nil, style)
			t.screen.SetContent(x*CellColumns+1, y, ' ', nil, style)
		}
	}
	if sh > 0 {
		t.drawBar(sh-1, sw)
	}
	t.screen.Show()
}

func (t *Terminal) drawBar(row, width int) {
	bar := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, row, ' ', nil, bar)
	}
	drawText(t.screen, 0, row, width, bar, t.statusText())
}

func (t *Terminal) statusText() string {
	state := "paused"
	if t.sess.Running() {
		state = "running"
	}
	line := fmt.Sprintf(" gen %d  pop %d  %s  %.0f gen/s", t.sess.Generation(), t.sess.Population(), state, t.sess.Speed())
	msg, ok := t.sess.Status()
	t.statusShown = ok
	if ok {
		line += "  | " + msg
	} else if t.sess.Stats().Visible() {
		if hi, ok := t.sess.Stats().Max(); ok {
			lo, _ := t.sess.Stats().Min()
			line += fmt.Sprintf("  | min %d max %d", lo, hi)
		}
	}
	return line
}

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, msg string) {
	for _, r := range msg {
		if x >= maxWidth {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleEvent applies one tcell event and reports whether to keep running.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return t.ctl.Execute(app.CmdQuit)
	case tcell.KeyCtrlS:
		return t.ctl.Execute(app.CmdSave)
	case tcell.KeyCtrlO:
		return t.ctl.Execute(app.CmdLoad)
	case tcell.KeyEnter:
		t.sess.SetRunning(true)
		return true
	case tcell.KeyRune:
		return t.ctl.Execute(app.CommandForRune(ev.Rune(), ev.Modifiers()&tcell.ModCtrl != 0))
	}
	return true
}

// cellAt maps a terminal position to a board cell.
func (t *Terminal) cellAt(col, row int) (int, int, bool) {
	x, y := col/CellColumns, row
	if col < 0 || !t.sess.Grid().InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y, ok := t.cellAt(col, row)
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		if !t.mouseDown {
			t.mouseDown = true
			t.pressX, t.pressY, t.pressValid = x, y, ok
			return
		}
		if !t.sess.Dragging() && t.pressValid && ok && (x != t.pressX || y != t.pressY) {
			t.sess.BeginDrag(t.pressX, t.pressY)
		}
		if t.sess.Dragging() && ok {
			t.sess.DragTo(x, y)
		}
	case t.mouseDown:
		t.mouseDown = false
		if t.sess.Dragging() {
			t.sess.EndDrag()
			return
		}
		if t.pressValid {
			t.sess.Click(t.pressX, t.pressY)
		}
	}
}

// tick advances the session and reports whether the screen is stale: a
// generation passed, a theme switch is animating or just settled, or the
// status message appeared or expired since the last Draw.
func (t *Terminal) tick(now time.Time) bool {
	animating := t.sess.Theme().Transitioning()
	stepped := t.sess.Tick(now)
	_, status := t.sess.Status()
	return stepped || animating || t.sess.Theme().Transitioning() || status != t.statusShown
}

// Run polls events and ticks the session until ctx is done or the user quits.
// The screen is finalised on return.
func (t *Terminal) Run(ctx context.Context, tps int) error {
	defer t.screen.Fini()
	if tps <= 0 {
		tps = 60
	}
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	t.log.WithFields(log.Fields{"width": t.sess.Grid().Width(), "height": t.sess.Grid().Height()}).Info("terminal started")
	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				return nil
			}
			t.Draw()
		case now := <-ticker.C:
			if t.tick(now) {
				t.Draw()
			}
		}
	}
}
