package life

import (
	"fmt"
	"image"

	"game-of-life/pkg/core"
)

// CellState is the binary state of a single cell.
type CellState uint8

const (
	// Dead is the zero value so freshly allocated buffers start empty.
	Dead CellState = iota
	// Alive marks a live cell.
	Alive
)

// String implements fmt.Stringer.
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Toggle returns the opposite state.
func (s CellState) Toggle() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

// Grid implements Conway's Game of Life on a bounded (non-wrapping) board.
type Grid struct {
	cur     *core.ByteGrid
	nxt     *core.ByteGrid
	density float64
}

// New returns an empty grid with the provided dimensions.
func New(w, h int) *Grid {
	return &Grid{
		cur:     core.NewByteGrid(w, h),
		nxt:     core.NewByteGrid(w, h),
		density: DefaultConfig().Density,
	}
}

// Default returns an empty 50x50 grid.
func Default() *Grid {
	c := DefaultConfig()
	return New(c.Width, c.Height)
}

// NewWithConfig returns an empty grid sized from cfg. The configured density
// is used by Reset.
func NewWithConfig(cfg Config) *Grid {
	g := New(cfg.Width, cfg.Height)
	g.density = clampDensity(cfg.Density)
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.cur.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.cur.H }

// Cells exposes the current generation as 0/1 values. Callers must treat the
// slice as read-only; it is replaced on every generation.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Density reports the density Reset randomizes with.
func (g *Grid) Density() float64 { return g.density }

// SetDensity changes the density Reset randomizes with.
func (g *Grid) SetDensity(d float64) { g.density = clampDensity(d) }

// InBounds reports whether (x, y) addresses a cell on the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cur.InBounds(x, y) }

// Cell returns the state at (x, y). Reading outside the grid is a caller bug
// and panics; use InBounds to guard untrusted coordinates.
func (g *Grid) Cell(x, y int) CellState {
	if !g.cur.InBounds(x, y) {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %dx%d grid", x, y, g.cur.W, g.cur.H))
	}
	return CellState(g.cur.Cells()[g.cur.Index(x, y)])
}

// SetCell writes s at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(x, y int, s CellState) {
	if !g.cur.InBounds(x, y) {
		return
	}
	g.cur.Cells()[g.cur.Index(x, y)] = uint8(s)
}

// ToggleCell flips the cell at (x, y). Out-of-bounds toggles are ignored.
func (g *Grid) ToggleCell(x, y int) {
	if !g.cur.InBounds(x, y) {
		return
	}
	cells := g.cur.Cells()
	idx := g.cur.Index(x, y)
	cells[idx] = uint8(CellState(cells[idx]).Toggle())
}

// Clear kills every cell.
func (g *Grid) Clear() { g.cur.Clear() }

// Fill sets every cell to s.
func (g *Grid) Fill(s CellState) { g.cur.Fill(uint8(s)) }

// Population counts the live cells.
func (g *Grid) Population() int { return g.cur.Count() }

// AliveCells lists the coordinates of live cells in row-major order.
func (g *Grid) AliveCells() []image.Point {
	var pts []image.Point
	w := g.cur.W
	for i, c := range g.cur.Cells() {
		if c != 0 {
			pts = append(pts, image.Pt(i%w, i/w))
		}
	}
	return pts
}

// CountNeighbors returns the number of live cells in the Moore neighborhood
// of (x, y). Positions beyond the edges count as dead.
func (g *Grid) CountNeighbors(x, y int) int {
	return countNeighbors(g.cur, x, y)
}

func countNeighbors(b *core.ByteGrid, x, y int) int {
	cells := b.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.W {
				continue
			}
			n += int(cells[ny*b.W+nx])
		}
	}
	return n
}

// NextGeneration advances the whole grid by one generation. The next state is
// built in a separate buffer from the current one and swapped in afterwards.
func (g *Grid) NextGeneration() {
	w, h := g.cur.W, g.cur.H
	cur := g.cur.Cells()
	nxt := g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = 0
			if Rule(cur[idx] == 1, countNeighbors(g.cur, x, y)) {
				nxt[idx] = 1
			}
		}
	}
	g.cur.Swap(g.nxt)
}

// Step advances the simulation by one generation.
func (g *Grid) Step() { g.NextGeneration() }

// Randomize sets each cell alive with probability density using a time-based
// seed.
func (g *Grid) Randomize(density float64) {
	core.FillDensity(core.NewTimeSeededRNG().Source(), g.cur.Cells(), density)
}

// RandomizeSeeded is Randomize with a caller-provided seed.
func (g *Grid) RandomizeSeeded(density float64, seed int64) {
	core.FillDensity(core.NewRNG(seed).Source(), g.cur.Cells(), density)
}

// Reset randomizes the board at the configured density. A zero seed draws
// from the clock.
func (g *Grid) Reset(seed int64) {
	if seed == 0 {
		g.Randomize(g.density)
		return
	}
	g.RandomizeSeeded(g.density, seed)
}

// LoadPattern clears the grid and stamps rows at the given offset. 'O', '*'
// and '#' mark live cells; any other rune is dead. Stencil cells that fall
// outside the grid are dropped.
func (g *Grid) LoadPattern(rows []string, xOffset, yOffset int) {
	g.Clear()
	for dy, row := range rows {
		dx := 0
		for _, ch := range row {
			g.SetCell(xOffset+dx, yOffset+dy, stencilState(ch))
			dx++
		}
	}
}

func stencilState(ch rune) CellState {
	switch ch {
	case 'O', '*', '#':
		return Alive
	default:
		return Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.cur.W, g.cur.H)
	c.density = g.density
	copy(c.cur.Cells(), g.cur.Cells())
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.cur.W != other.cur.W || g.cur.H != other.cur.H {
		return false
	}
	a, b := g.cur.Cells(), other.cur.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
