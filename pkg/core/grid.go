package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Zero dimensions are allowed and yield a grid with no addressable cells.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a stored cell.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	g.Fill(0)
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Count returns how many cells hold a non-zero value.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Swap exchanges the backing buffers of two grids of identical size. It
// reports false and leaves both untouched when the sizes differ.
func (g *ByteGrid) Swap(other *ByteGrid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	g.data, other.data = other.data, g.data
	return true
}
