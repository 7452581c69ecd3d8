// Package grid stores a finite two-state board in row-major order and
// provides bounds-checked access plus copying structural transforms.
package grid

// Grid is a fixed-size rectangular board of cells. The cell at (x, y) lives at
// offset y*Width()+x. A Grid never shares storage with another Grid.
type Grid struct {
	w, h  int
	cells []Cell
}

// New allocates a w*h grid with every cell dead. Like make, it panics when a
// dimension is negative.
func New(w, h int) *Grid {
	if w < 0 || h < 0 {
		panic("grid: negative dimension")
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// NewSquare allocates an n*n grid with every cell dead.
func NewSquare(n int) *Grid { return New(n, n) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// TotalCells returns Width()*Height().
func (g *Grid) TotalCells() int { return len(g.cells) }

// AliveCount scans the grid and returns the number of live cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// DeadCount scans the grid and returns the number of dead cells.
func (g *Grid) DeadCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Dead {
			n++
		}
	}
	return n
}

// Resize reallocates the grid. Cells inside both the old and new bounds keep
// their value; every other cell is dead.
func (g *Grid) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return invalidf("resize to %dx%d", w, h)
	}
	cells := make([]Cell, w*h)
	cw, ch := min(g.w, w), min(g.h, h)
	for y := 0; y < ch; y++ {
		copy(cells[y*w:y*w+cw], g.cells[y*g.w:y*g.w+cw])
	}
	g.w, g.h, g.cells = w, h, cells
	return nil
}

// ResizeSquare resizes the grid to n*n.
func (g *Grid) ResizeSquare(n int) error { return g.Resize(n, n) }

func (g *Grid) check(op string, x, y int) error {
	if x < 0 || x >= g.w {
		return &RangeError{Op: op, Axis: "x", Value: x, Limit: g.w}
	}
	if y < 0 || y >= g.h {
		return &RangeError{Op: op, Axis: "y", Value: y, Limit: g.h}
	}
	return nil
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.check("get", x, y); err != nil {
		return Dead, err
	}
	return g.cells[y*g.w+x], nil
}

// Set updates the cell at (x, y). Only Dead and Alive are accepted.
func (g *Grid) Set(x, y int, c Cell) error {
	if err := g.check("set", x, y); err != nil {
		return err
	}
	if !c.Valid() {
		return invalidf("set (%d,%d) to cell %d", x, y, c)
	}
	g.cells[y*g.w+x] = c
	return nil
}

// Ref returns a handle to the cell at (x, y) so callers can read and write it
// without re-deriving the offset. The handle is invalidated by Resize. Only
// Dead and Alive may be stored through it.
func (g *Grid) Ref(x, y int) (*Cell, error) {
	if err := g.check("ref", x, y); err != nil {
		return nil, err
	}
	return &g.cells[y*g.w+x], nil
}

// Cells exposes the backing row-major slice so hot loops can index it
// directly. The slice is replaced by Resize. Writers must store only Dead or
// Alive.
func (g *Grid) Cells() []Cell { return g.cells }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) error {
	if !c.Valid() {
		return invalidf("fill with cell %d", c)
	}
	for i := range g.cells {
		g.cells[i] = c
	}
	return nil
}

// Clear kills every cell.
func (g *Grid) Clear() { clear(g.cells) }

// Export writes the cells into dst as 0/1 bytes in row-major order, growing
// dst when it is too short, and returns the filled slice.
func (g *Grid) Export(dst []uint8) []uint8 {
	if cap(dst) < len(g.cells) {
		dst = make([]uint8, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i, c := range g.cells {
		dst[i] = uint8(c)
	}
	return dst
}
