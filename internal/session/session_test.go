package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"game-of-life/pkg/patterns"
	"game-of-life/pkg/rle"
	"game-of-life/pkg/savestate"
	"game-of-life/pkg/sims/life"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Logger = &log.Logger{Handler: discard.New(), Level: log.DebugLevel}
	opts.Clock = clock.Now
	return New(opts), clock
}

func TestNewSession(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Grid().Width() != 60 || s.Grid().Height() != 40 {
		t.Fatalf("grid = %dx%d, want 60x40", s.Grid().Width(), s.Grid().Height())
	}
	if s.Generation() != 0 || s.Running() {
		t.Fatal("new session should be paused at generation 0")
	}
	if s.Stats().Len() != 1 {
		t.Fatalf("history should hold the initial population, has %d samples", s.Stats().Len())
	}
	if s.Population() == 0 {
		t.Fatal("seeded session at density 0.3 should have live cells")
	}
}

func TestNewClampsOptions(t *testing.T) {
	s := New(Options{Width: 5000, Height: 1, Speed: 99, CellSize: 500, Density: 4, Seed: 1})
	if s.Grid().Width() != MaxWidth || s.Grid().Height() != MinHeight {
		t.Fatalf("grid = %dx%d", s.Grid().Width(), s.Grid().Height())
	}
	if s.Speed() != MaxSpeed || s.View().CellSize != MaxCellSize || s.Density() != 1 {
		t.Fatalf("settings not clamped: speed=%v cell=%v density=%v", s.Speed(), s.View().CellSize, s.Density())
	}
}

func TestStepCountsGenerations(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step()
	s.Step()
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation())
	}
	if s.Stats().Len() != 3 {
		t.Fatalf("history samples = %d, want 3", s.Stats().Len())
	}
}

func TestTickPacing(t *testing.T) {
	s, clock := newTestSession(t)
	if s.Tick(clock.Now()) {
		t.Fatal("paused session must not step")
	}
	s.SetRunning(true)
	if s.Tick(clock.Now()) {
		t.Fatal("starting should wait a full interval")
	}
	clock.Advance(50 * time.Millisecond)
	if s.Tick(clock.Now()) {
		t.Fatal("10 gen/s should not step after 50ms")
	}
	clock.Advance(60 * time.Millisecond)
	if !s.Tick(clock.Now()) {
		t.Fatal("expected a step after 110ms")
	}
	if s.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", s.Generation())
	}
	s.TogglePause()
	clock.Advance(time.Second)
	if s.Tick(clock.Now()) {
		t.Fatal("paused session stepped")
	}
}

func TestClearAndRandomizeReset(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step()
	s.Clear()
	if s.Generation() != 0 || s.Population() != 0 || s.Stats().HasData() {
		t.Fatal("clear should empty grid, counter and history")
	}
	s.SetDensity(1)
	s.Step()
	s.Randomize()
	if s.Generation() != 0 || s.Population() != 60*40 {
		t.Fatalf("randomize at density 1: gen=%d pop=%d", s.Generation(), s.Population())
	}
	if s.Stats().Len() != 1 {
		t.Fatal("randomize should restart history with one sample")
	}
}

func TestResize(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step()
	s.Resize(300, 5)
	if s.Grid().Width() != MaxWidth || s.Grid().Height() != MinHeight || s.Generation() != 0 {
		t.Fatalf("resize produced %dx%d gen %d", s.Grid().Width(), s.Grid().Height(), s.Generation())
	}
}

func TestLoadPatternCentres(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.LoadPattern("block"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Population() != 4 {
		t.Fatalf("population = %d, want 4", s.Population())
	}
	if s.Grid().Cell(29, 19) != life.Alive || s.Grid().Cell(30, 20) != life.Alive {
		t.Fatal("block should sit at the centre of a 60x40 grid")
	}
	if msg, ok := s.Status(); !ok || !strings.Contains(msg, "Block") {
		t.Fatalf("status = %q", msg)
	}
	if err := s.LoadPattern("nope"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestCyclePattern(t *testing.T) {
	s, _ := newTestSession(t)
	names := patterns.Names()
	if got := s.CyclePattern(1); got != names[0] {
		t.Fatalf("first cycle = %q, want %q", got, names[0])
	}
	if got := s.CyclePattern(1); got != names[1] {
		t.Fatalf("second cycle = %q, want %q", got, names[1])
	}
	if got := s.CyclePattern(-1); got != names[0] {
		t.Fatalf("back = %q, want %q", got, names[0])
	}
	if got := s.CyclePattern(-1); got != names[len(names)-1] {
		t.Fatalf("wrap = %q, want %q", got, names[len(names)-1])
	}
}

func TestImportGrowsGrid(t *testing.T) {
	s, _ := newTestSession(t)
	p := rle.New("Wide", 120, 3)
	p.Cells[1][0] = true
	p.Cells[1][119] = true
	s.Import(p, "wide.rle")
	if s.Grid().Width() != 120 || s.Grid().Height() != 40 {
		t.Fatalf("grid = %dx%d, want 120x40", s.Grid().Width(), s.Grid().Height())
	}
	if s.Grid().Cell(0, 19) != life.Alive || s.Grid().Cell(119, 19) != life.Alive {
		t.Fatal("pattern should be vertically centred")
	}
	if s.Population() != 2 {
		t.Fatalf("import should replace the board, population = %d", s.Population())
	}
}

func TestSaveLoadJSON(t *testing.T) {
	s, _ := newTestSession(t)
	s.Step()
	s.Step()
	s.SetSpeed(12)
	before := s.Grid().Clone()

	path := filepath.Join(t.TempDir(), "game.gol")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	other, _ := newTestSession(t)
	if err := other.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !other.Grid().Equal(before) {
		t.Fatal("loaded grid differs")
	}
	if other.Generation() != 2 || other.Speed() != 12 {
		t.Fatalf("loaded generation=%d speed=%v", other.Generation(), other.Speed())
	}
}

func TestSaveLoadRLE(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.LoadPattern("glider"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "glider.rle")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	other, _ := newTestSession(t)
	if err := other.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if other.Population() != 5 {
		t.Fatalf("population = %d, want 5", other.Population())
	}
	if msg, _ := other.Status(); !strings.Contains(msg, savestate.ExportName) {
		t.Fatalf("status = %q", msg)
	}
}

func TestLoadFailureSetsStatus(t *testing.T) {
	s, _ := newTestSession(t)
	err := s.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
	if msg, _ := s.Status(); !strings.HasPrefix(msg, "Load failed") {
		t.Fatalf("status = %q", msg)
	}
}

func TestLoadRejectsOverflowingRLE(t *testing.T) {
	s, _ := newTestSession(t)
	path := filepath.Join(t.TempDir(), "bad.rle")
	if err := os.WriteFile(path, []byte("x = 3, y = 3\n9223372036854775808bo!\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	before := s.Grid().Clone()
	if err := s.Load(path); !errors.Is(err, rle.ErrSyntax) {
		t.Fatalf("err = %v, want rle.ErrSyntax", err)
	}
	if !s.Grid().Equal(before) {
		t.Fatal("failed load must leave the board alone")
	}
}

func TestDragPainting(t *testing.T) {
	s, _ := newTestSession(t)
	s.Clear()
	s.BeginDrag(1, 1)
	if state, ok := s.DragState(); !ok || state != life.Alive {
		t.Fatal("dragging from a dead cell should paint alive")
	}
	s.DragTo(2, 1)
	s.DragTo(3, 1)
	s.DragTo(-5, 1)
	s.EndDrag()
	if s.Population() != 3 {
		t.Fatalf("population = %d, want 3", s.Population())
	}

	s.BeginDrag(2, 1)
	s.DragTo(3, 1)
	s.EndDrag()
	if s.Population() != 1 {
		t.Fatalf("erasing stroke left population %d, want 1", s.Population())
	}
	s.DragTo(5, 5)
	if s.Population() != 1 {
		t.Fatal("DragTo without an active stroke must not paint")
	}
}

func TestClick(t *testing.T) {
	s, _ := newTestSession(t)
	s.Clear()
	s.Click(4, 4)
	if s.Grid().Cell(4, 4) != life.Alive {
		t.Fatal("click should toggle the cell on")
	}
	s.Click(4, 4)
	if s.Grid().Cell(4, 4) != life.Dead {
		t.Fatal("second click should toggle it off")
	}
	s.Click(999, 999)
}

func TestScreenToCell(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetZoom(2)
	x, y, ok := s.ScreenToCell(45, 21)
	if !ok || x != 2 || y != 1 {
		t.Fatalf("ScreenToCell = %d,%d,%v; want 2,1,true", x, y, ok)
	}
	if _, _, ok := s.ScreenToCell(-1, 0); ok {
		t.Fatal("negative coordinates are off the board")
	}
	if _, _, ok := s.ScreenToCell(60*20, 0); ok {
		t.Fatal("points past the right edge are off the board")
	}
}

func TestZoomAndCellSizeClamp(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetZoom(10)
	if s.View().Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", s.View().Zoom, MaxZoom)
	}
	s.SetZoom(0.01)
	if s.View().Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", s.View().Zoom, MinZoom)
	}
	s.SetCellSize(100)
	if s.View().CellSize != MaxCellSize {
		t.Fatalf("cell size = %v", s.View().CellSize)
	}
	s.SetCellSize(0.5)
	if s.View().CellSize != MinCellSize {
		t.Fatalf("cell size = %v", s.View().CellSize)
	}
	s.SetCellSize(10)
	s.SetZoom(2)
	if s.View().EffectiveCellSize() != 20 {
		t.Fatalf("effective size = %v", s.View().EffectiveCellSize())
	}
}

func TestStatusExpires(t *testing.T) {
	s, clock := newTestSession(t)
	s.SetStatus("hello")
	if msg, ok := s.Status(); !ok || msg != "hello" {
		t.Fatalf("status = %q,%v", msg, ok)
	}
	clock.Advance(StatusExpiry + time.Millisecond)
	if _, ok := s.Status(); ok {
		t.Fatal("status should expire")
	}
}

func TestToggles(t *testing.T) {
	s, clock := newTestSession(t)
	s.ToggleGridLines()
	if s.View().GridLines {
		t.Fatal("grid lines should toggle off")
	}
	s.ToggleStats()
	if s.Stats().Visible() {
		t.Fatal("stats should toggle hidden")
	}
	s.ToggleTheme()
	if !s.Theme().Transitioning() {
		t.Fatal("theme toggle should animate")
	}
	clock.Advance(time.Second)
	s.Tick(clock.Now())
	if s.Theme().Transitioning() {
		t.Fatal("tick should settle the finished transition")
	}
}
