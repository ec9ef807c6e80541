// Package session owns the state of one interactive Game of Life run: the
// grid, generation counter, pacing, statistics, theme, view settings, drag
// painting and status line. Frontends read from it and forward input to it;
// it never touches a window or terminal itself.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"

	"game-of-life/internal/core"
	"game-of-life/internal/stats"
	"game-of-life/internal/theme"
	"game-of-life/pkg/patterns"
	"game-of-life/pkg/rle"
	"game-of-life/pkg/savestate"
	"game-of-life/pkg/sims/life"
)

// Bounds for user-adjustable settings.
const (
	MinWidth     = 10
	MaxWidth     = 200
	MinHeight    = 10
	MaxHeight    = 150
	MinSpeed     = 1.0
	MaxSpeed     = 30.0
	MinCellSize  = 1.0
	MaxCellSize  = 50.0
	MinZoom      = 0.1
	MaxZoom      = 5.0
	StatusExpiry = 5 * time.Second
)

// ErrUnknownPattern is returned by LoadPattern for names missing from the
// library.
var ErrUnknownPattern = errors.New("unknown pattern")

// Options configures a new Session.
type Options struct {
	Width    int
	Height   int
	Density  float64
	Speed    float64
	CellSize float64
	Seed     int64
	Theme    theme.Kind
	History  int
	Logger   log.Interface
	Clock    func() time.Time
}

// DefaultOptions mirrors the desktop application's start-up values.
func DefaultOptions() Options {
	return Options{
		Width:    60,
		Height:   40,
		Density:  0.3,
		Speed:    10,
		CellSize: 10,
		Theme:    theme.Dark,
		History:  stats.DefaultHistory,
	}
}

// View holds presentation settings that persist across frames.
type View struct {
	CellSize  float64
	Zoom      float64
	GridLines bool
}

// EffectiveCellSize is the on-screen cell size after zoom.
func (v View) EffectiveCellSize() float64 { return v.CellSize * v.Zoom }

// Session is the single owner of the running game.
type Session struct {
	grid       *life.Grid
	generation int
	running    bool
	speed      float64
	density    float64
	pacer      *core.FixedStep
	stats      *stats.Population
	theme      *theme.Manager
	view       View

	dragging  bool
	dragState life.CellState

	status   string
	statusAt time.Time

	patternIdx int

	log   log.Interface
	clock func() time.Time
}

// New builds a session with a randomized grid. A zero Seed randomizes from
// the clock.
func New(opts Options) *Session {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Speed <= 0 {
		opts.Speed = def.Speed
	}
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.Logger == nil {
		opts.Logger = log.Log
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	s := &Session{
		speed:      clampFloat(opts.Speed, MinSpeed, MaxSpeed),
		density:    clampFloat(opts.Density, 0, 1),
		stats:      stats.New(opts.History),
		theme:      theme.NewManager(opts.Theme),
		view:       View{CellSize: clampFloat(opts.CellSize, MinCellSize, MaxCellSize), Zoom: 1, GridLines: true},
		patternIdx: -1,
		log:        opts.Logger,
		clock:      opts.Clock,
	}
	s.pacer = core.NewFixedStep(s.speed)
	s.grid = life.NewWithConfig(life.Config{
		Width:   clampInt(opts.Width, MinWidth, MaxWidth),
		Height:  clampInt(opts.Height, MinHeight, MaxHeight),
		Density: s.density,
	})
	s.grid.Reset(opts.Seed)
	s.resetHistory(true)
	return s
}

// Grid exposes the current grid for drawing.
func (s *Session) Grid() *life.Grid { return s.grid }

// Generation returns the number of generations since the last reset.
func (s *Session) Generation() int { return s.generation }

// Running reports whether Tick advances the grid.
func (s *Session) Running() bool { return s.running }

// Speed returns the run rate in generations per second.
func (s *Session) Speed() float64 { return s.speed }

// Density returns the density used by Randomize and Resize.
func (s *Session) Density() float64 { return s.density }

// Stats exposes the population history.
func (s *Session) Stats() *stats.Population { return s.stats }

// Theme exposes the theme manager.
func (s *Session) Theme() *theme.Manager { return s.theme }

// View returns the current view settings.
func (s *Session) View() View { return s.view }

// Population returns the live-cell count of the current grid.
func (s *Session) Population() int { return s.grid.Population() }

func (s *Session) resetHistory(sample bool) {
	s.generation = 0
	s.stats.Clear()
	if sample {
		s.stats.Add(s.grid.Population())
	}
}

// Tick advances one generation when the session is running and the pacer
// says a step is due. It reports whether a step happened.
func (s *Session) Tick(now time.Time) bool {
	s.theme.Update(now)
	if !s.running {
		return false
	}
	if !s.pacer.Poll(now) {
		return false
	}
	s.Step()
	return true
}

// Step advances exactly one generation.
func (s *Session) Step() {
	s.grid.NextGeneration()
	s.generation++
	s.stats.Add(s.grid.Population())
}

// SetRunning starts or pauses automatic stepping. Starting waits a full
// interval before the first step.
func (s *Session) SetRunning(running bool) {
	if running && !s.running {
		s.pacer.Restart(s.clock())
	}
	s.running = running
}

// TogglePause flips between running and paused.
func (s *Session) TogglePause() { s.SetRunning(!s.running) }

// Clear kills every cell and resets the generation counter and history.
func (s *Session) Clear() {
	s.grid.Clear()
	s.resetHistory(false)
}

// Randomize reseeds the grid at the current density.
func (s *Session) Randomize() {
	s.grid.Randomize(s.density)
	s.resetHistory(true)
}

// Resize replaces the grid with a randomized one of the given size, clamped
// to the supported range.
func (s *Session) Resize(w, h int) {
	w = clampInt(w, MinWidth, MaxWidth)
	h = clampInt(h, MinHeight, MaxHeight)
	s.grid = life.NewWithConfig(life.Config{Width: w, Height: h, Density: s.density})
	s.grid.Randomize(s.density)
	s.resetHistory(true)
	s.log.WithFields(log.Fields{"width": w, "height": h}).Debug("grid resized")
}

// LoadPattern centres a library pattern on an otherwise empty grid.
func (s *Session) LoadPattern(name string) error {
	p, ok := patterns.Lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	s.loadPattern(p)
	return nil
}

func (s *Session) loadPattern(p patterns.Pattern) {
	x, y := p.Offset(s.grid.Width(), s.grid.Height())
	s.grid.LoadPattern(p.Rows, x, y)
	s.resetHistory(true)
	for i, candidate := range patterns.All() {
		if candidate.Name == p.Name {
			s.patternIdx = i
		}
	}
	s.SetStatus(fmt.Sprintf("Loaded preset %s", p.Name))
	s.log.WithFields(log.Fields{"pattern": p.Name, "description": p.Description}).Debug("preset loaded")
}

// CyclePattern loads the next (dir > 0) or previous (dir < 0) library
// pattern and returns its name.
func (s *Session) CyclePattern(dir int) string {
	all := patterns.All()
	if len(all) == 0 {
		return ""
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	idx := s.patternIdx + step
	if s.patternIdx < 0 && step < 0 {
		idx = len(all) - 1
	}
	idx = (idx%len(all) + len(all)) % len(all)
	s.loadPattern(all[idx])
	return all[idx].Name
}

// Import places an RLE pattern at the centre of a fresh grid large enough to
// hold both it and the current board size.
func (s *Session) Import(p *rle.Pattern, source string) {
	w := max(p.Width, s.grid.Width())
	h := max(p.Height, s.grid.Height())
	g := life.NewWithConfig(life.Config{Width: w, Height: h, Density: s.density})
	p.Stamp(g, (w-p.Width)/2, (h-p.Height)/2)
	s.grid = g
	s.resetHistory(true)
	if p.Name != "" {
		s.SetStatus(fmt.Sprintf("RLE pattern '%s' loaded from: %s", p.Name, source))
	} else {
		s.SetStatus(fmt.Sprintf("RLE pattern loaded from: %s", source))
	}
}

// Settings returns the values persisted with a saved state.
func (s *Session) Settings() savestate.Settings {
	return savestate.Settings{UpdateSpeed: s.speed, CellSize: s.view.CellSize, Density: s.density}
}

// Save writes the session to path. ".rle" paths store the pattern only.
func (s *Session) Save(path string) error {
	format, err := savestate.SaveFile(path, s.grid, s.generation, s.Settings())
	if err != nil {
		s.SetStatus(fmt.Sprintf("Save failed: %v", err))
		s.log.WithError(err).WithField("path", path).Error("save failed")
		return err
	}
	s.SetStatus(fmt.Sprintf("File saved as %s format to: %s", format, path))
	s.log.WithFields(log.Fields{
		"path":       path,
		"format":     format.String(),
		"generation": s.generation,
		"population": s.grid.Population(),
	}).Info("saved")
	return nil
}

// Load restores a JSON state or imports an RLE pattern from path.
func (s *Session) Load(path string) error {
	loaded, err := savestate.LoadFile(path)
	if err != nil {
		s.SetStatus(fmt.Sprintf("Load failed: %v", err))
		s.log.WithError(err).WithField("path", path).Error("load failed")
		return err
	}
	if loaded.Pattern != nil {
		s.Import(loaded.Pattern, path)
		s.log.WithFields(log.Fields{"path": path, "name": loaded.Pattern.Name}).Info("imported pattern")
		return nil
	}
	if err := s.Restore(loaded.State); err != nil {
		s.SetStatus(fmt.Sprintf("Load failed: %v", err))
		return err
	}
	s.SetStatus(fmt.Sprintf("Game state loaded from: %s", path))
	s.log.WithFields(log.Fields{"path": path, "generation": s.generation}).Info("loaded")
	return nil
}

// Restore replaces the grid, generation and settings with a saved state.
func (s *Session) Restore(st *savestate.State) error {
	g, err := st.Grid()
	if err != nil {
		return err
	}
	s.grid = g
	s.stats.Clear()
	s.generation = st.Generation
	s.stats.Add(g.Population())
	s.SetSpeed(st.Settings.UpdateSpeed)
	s.SetCellSize(st.Settings.CellSize)
	s.SetDensity(st.Settings.Density)
	return nil
}

// BeginDrag starts painting at (x, y) with the opposite of that cell's
// state. Presses outside the grid are ignored.
func (s *Session) BeginDrag(x, y int) {
	if !s.grid.InBounds(x, y) {
		return
	}
	s.dragState = s.grid.Cell(x, y).Toggle()
	s.dragging = true
	s.grid.SetCell(x, y, s.dragState)
}

// DragTo paints (x, y) with the state chosen by BeginDrag.
func (s *Session) DragTo(x, y int) {
	if !s.dragging {
		return
	}
	s.grid.SetCell(x, y, s.dragState)
}

// EndDrag finishes a paint stroke.
func (s *Session) EndDrag() {
	s.dragging = false
	s.dragState = life.Dead
}

// Dragging reports whether a paint stroke is active.
func (s *Session) Dragging() bool { return s.dragging }

// DragState returns the state being painted.
func (s *Session) DragState() (life.CellState, bool) { return s.dragState, s.dragging }

// Click toggles a single cell.
func (s *Session) Click(x, y int) {
	if s.dragging {
		return
	}
	s.grid.ToggleCell(x, y)
}

// ScreenToCell maps a point relative to the board's top-left corner to a
// cell coordinate.
func (s *Session) ScreenToCell(px, py float64) (int, int, bool) {
	size := s.view.EffectiveCellSize()
	if size <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := int(px/size), int(py/size)
	if !s.grid.InBounds(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// SetSpeed sets the run rate, clamped to [MinSpeed, MaxSpeed].
func (s *Session) SetSpeed(v float64) {
	s.speed = clampFloat(v, MinSpeed, MaxSpeed)
	s.pacer.SetRate(s.speed)
}

// SetDensity sets the randomization density, clamped to [0, 1].
func (s *Session) SetDensity(v float64) {
	s.density = clampFloat(v, 0, 1)
	s.grid.SetDensity(s.density)
}

// SetCellSize sets the unzoomed cell size in pixels.
func (s *Session) SetCellSize(v float64) {
	s.view.CellSize = clampFloat(v, MinCellSize, MaxCellSize)
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (s *Session) SetZoom(v float64) {
	s.view.Zoom = clampFloat(v, MinZoom, MaxZoom)
}

// AdjustZoom adds delta to the zoom factor.
func (s *Session) AdjustZoom(delta float64) { s.SetZoom(s.view.Zoom + delta) }

// ToggleGridLines shows or hides the cell grid.
func (s *Session) ToggleGridLines() { s.view.GridLines = !s.view.GridLines }

// ToggleTheme starts an animated switch to the other theme.
func (s *Session) ToggleTheme() { s.theme.Toggle(s.clock()) }

// ToggleStats shows or hides the statistics panel.
func (s *Session) ToggleStats() { s.stats.SetVisible(!s.stats.Visible()) }

// Palette returns the colors to draw with right now.
func (s *Session) Palette() theme.Palette { return s.theme.Colors(s.clock()) }

// SetStatus shows msg on the status line until it expires.
func (s *Session) SetStatus(msg string) {
	s.status = msg
	s.statusAt = s.clock()
}

// Status returns the status line if it has not expired.
func (s *Session) Status() (string, bool) {
	if s.status == "" {
		return "", false
	}
	if s.clock().Sub(s.statusAt) > StatusExpiry {
		s.status = ""
		return "", false
	}
	return s.status, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
