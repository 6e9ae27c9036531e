package core

import "fmt"

// Grid stores a 2D matrix of binary cell values in row-major order. Rows are
// generations, columns are cells of the one-dimensional automaton.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a zeroed grid with cols columns and rows rows. It panics
// when either dimension is smaller than one.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 || rows < 1 {
		panic(fmt.Sprintf("core.NewGrid: invalid dimensions %dx%d", cols, rows))
	}
	return &Grid{W: cols, H: rows, data: make([]uint8, cols*rows)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the state of column x in row y.
func (g *Grid) At(x, y int) uint8 { return g.data[g.Index(x, y)] }

// Set stores v in column x of row y.
func (g *Grid) Set(x, y int, v uint8) { g.data[g.Index(x, y)] = v }

// Row returns row y as a sub-slice of the backing storage.
func (g *Grid) Row(y int) []uint8 {
	start := y * g.W
	return g.data[start : start+g.W : start+g.W]
}

// WrapX applies circular wrapping to a column coordinate.
func (g *Grid) WrapX(x int) int {
	return (x%g.W + g.W) % g.W
}

// Alive counts the cells with state 1 in row y.
func (g *Grid) Alive(y int) int {
	n := 0
	for _, c := range g.Row(y) {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}
