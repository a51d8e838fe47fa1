package core

// Grid stores a fixed-size 2D field of binary cells in row-major order.
// Coordinates passed to Get and Set are wrapped onto the torus, so every
// integer pair addresses a valid cell.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice (0 dead, 1 alive) for renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for an already wrapped (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Get reports whether the cell at (row, col) is alive.
func (g *Grid) Get(row, col int) bool {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)] != 0
}

// Set updates the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) {
	row, col = g.Wrap(row, col)
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// CopyFrom overwrites every cell with the values of other. Both grids must
// share dimensions; a mismatched source copies the overlapping prefix only.
func (g *Grid) CopyFrom(other *Grid) {
	copy(g.data, other.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	c.CopyFrom(g)
	return c
}

// Equal reports whether both grids hold identical cells. The scan stops at
// the first mismatch.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
