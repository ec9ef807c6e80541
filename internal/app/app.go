//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"game-of-life/internal/render"
	"game-of-life/internal/session"
	"game-of-life/internal/ui"
)

// HUDWidth is the width of the control panel right of the board.
const HUDWidth = 240

// minScreenHeight keeps the HUD readable on short boards.
const minScreenHeight = 520

// ErrQuit is returned from Update when the user asks to quit.
var ErrQuit = ebiten.Termination

var keyRunes = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeySpace, ' '},
	{ebiten.KeyN, 'n'},
	{ebiten.KeyS, 's'},
	{ebiten.KeyC, 'c'},
	{ebiten.KeyR, 'r'},
	{ebiten.KeyT, 't'},
	{ebiten.KeyG, 'g'},
	{ebiten.KeyH, 'h'},
	{ebiten.KeyO, 'o'},
	{ebiten.KeyBracketLeft, '['},
	{ebiten.KeyBracketRight, ']'},
	{ebiten.KeyEqual, '='},
	{ebiten.KeyMinus, '-'},
	{ebiten.KeyQ, 'q'},
}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	pressed      bool
	pressX       int
	pressY       int
	pressOnBoard bool
}

// New constructs a Game around a controller.
func New(ctl *Controller) *Game {
	s := ctl.Session()
	return &Game{
		ctl:     ctl,
		sess:    s,
		painter: render.NewGridPainter(s.Grid().Width(), s.Grid().Height()),
		hud:     ui.NewHUD(s, "Game of Life", HUDWidth),
		overlay: ui.NewOverlay(s),
	}
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctl.Execute(CmdQuit)
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sess.SetRunning(true)
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	for _, kr := range keyRunes {
		if !inpututil.IsKeyJustPressed(kr.key) {
			continue
		}
		if !g.ctl.Execute(CommandForRune(kr.r, ctrl)) {
			return ErrQuit
		}
	}

	boardW, _ := g.boardSize()
	onPanel := g.hud.Update(boardW)
	if !onPanel {
		g.handleMouse()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.sess.AdjustZoom(math.Copysign(ZoomStep, dy))
	}

	g.sess.Tick(time.Now())
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y, onBoard := g.sess.ScreenToCell(float64(mx), float64(my))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		g.pressX, g.pressY, g.pressOnBoard = x, y, onBoard
		return
	}
	if !g.pressed {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.sess.Dragging() && g.pressOnBoard && onBoard && (x != g.pressX || y != g.pressY) {
			g.sess.BeginDrag(g.pressX, g.pressY)
		}
		if g.sess.Dragging() && onBoard {
			g.sess.DragTo(x, y)
		}
		return
	}
	g.pressed = false
	if g.sess.Dragging() {
		g.sess.EndDrag()
		return
	}
	if g.pressOnBoard {
		g.sess.Click(g.pressX, g.pressY)
	}
}

func (g *Game) boardSize() (int, int) {
	cell := g.sess.View().EffectiveCellSize()
	grid := g.sess.Grid()
	return int(math.Ceil(float64(grid.Width()) * cell)), int(math.Ceil(float64(grid.Height()) * cell))
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.sess.Palette()
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	grid := g.sess.Grid()
	view := g.sess.View()
	g.painter.Blit(screen, grid.Cells(), grid.Width(), grid.Height(), palette, view.EffectiveCellSize(), view.GridLines)

	boardW, boardH := g.boardSize()
	g.overlay.Draw(screen, boardW, boardH)
	g.hud.Draw(screen, boardW, screen.Bounds().Dy())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.boardSize()
	return w + g.hud.Width(), max(h, minScreenHeight)
}

// Run opens the window and blocks until the user quits.
func Run(ctl *Controller, tps int) error {
	game := New(ctl)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
