package life

import (
	"fmt"

	"lifegrid/pkg/grid"
)

// World runs Conway's Game of Life over two equally sized grids: the
// published generation and a scratch buffer the next one is computed into.
type World struct {
	cur, nxt *grid.Grid
	gen      uint64

	// Neighbour lookup tables, rebuilt when the size or edge policy changes.
	edge   Edge
	xs, ys []int
	stale  bool
}

// NewWorld returns a w*h world with every cell dead.
func NewWorld(w, h int) *World {
	return &World{cur: grid.New(w, h), nxt: grid.New(w, h), stale: true}
}

// NewSquareWorld returns an n*n world with every cell dead.
func NewSquareWorld(n int) *World { return NewWorld(n, n) }

// FromGrid returns a world whose current generation is a copy of initial.
func FromGrid(initial *grid.Grid) *World {
	return &World{
		cur:   initial.Clone(),
		nxt:   grid.New(initial.Width(), initial.Height()),
		stale: true,
	}
}

// Width returns the number of columns.
func (w *World) Width() int { return w.cur.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.cur.Height() }

// TotalCells returns Width()*Height().
func (w *World) TotalCells() int { return w.cur.TotalCells() }

// AliveCount returns the number of live cells in the current generation.
func (w *World) AliveCount() int { return w.cur.AliveCount() }

// DeadCount returns the number of dead cells in the current generation.
func (w *World) DeadCount() int { return w.cur.DeadCount() }

// Generation returns the number of steps taken since construction or Load.
func (w *World) Generation() uint64 { return w.gen }

// State returns a copy of the current generation.
func (w *World) State() *grid.Grid { return w.cur.Clone() }

// AppendText appends the canonical rendering of the current generation.
func (w *World) AppendText(buf []byte) []byte { return w.cur.AppendText(buf) }

// Load replaces the current generation with a copy of g, resizing the world
// to match, and resets the generation counter.
func (w *World) Load(g *grid.Grid) {
	w.cur = g.Clone()
	w.nxt = grid.New(g.Width(), g.Height())
	w.gen = 0
	w.stale = true
}

// Resize resizes both buffers, keeping the cells of the current generation
// that fall inside the new bounds.
func (w *World) Resize(width, height int) error {
	if err := w.cur.Resize(width, height); err != nil {
		return err
	}
	if err := w.nxt.Resize(width, height); err != nil {
		return err
	}
	w.stale = true
	return nil
}

// ResizeSquare resizes the world to n*n.
func (w *World) ResizeSquare(n int) error { return w.Resize(n, n) }

// Neighbours counts the live cells among the eight neighbours of (x, y) in
// the current generation under the given edge policy.
func (w *World) Neighbours(x, y int, edge Edge) (int, error) {
	if _, err := w.cur.Get(x, y); err != nil {
		return 0, err
	}
	w.prepare(edge)
	return w.count(w.cur.Cells(), x, y), nil
}

func (w *World) prepare(edge Edge) {
	if !w.stale && w.edge == edge {
		return
	}
	w.edge = edge
	w.xs = edge.axis(w.Width(), w.xs)
	w.ys = edge.axis(w.Height(), w.ys)
	w.stale = false
}

// count expects prepare to have been called for the desired policy.
func (w *World) count(cells []grid.Cell, x, y int) int {
	width := w.cur.Width()
	n := 0
	for j, ny := range w.ys[y : y+3] {
		if ny < 0 {
			continue
		}
		row := cells[ny*width : (ny+1)*width]
		for i, nx := range w.xs[x : x+3] {
			if nx < 0 || (i == 1 && j == 1) {
				continue
			}
			n += int(row[nx])
		}
	}
	return n
}

// Step computes one generation from the current one and publishes it.
func (w *World) Step(edge Edge) {
	w.prepare(edge)
	w.step()
}

// Advance applies Step steps times with the same edge policy.
func (w *World) Advance(steps int, edge Edge) error {
	if steps < 0 {
		return fmt.Errorf("%w: negative step count %d", grid.ErrInvalidArgument, steps)
	}
	w.prepare(edge)
	for i := 0; i < steps; i++ {
		w.step()
	}
	return nil
}

func (w *World) step() {
	width, height := w.cur.Width(), w.cur.Height()
	cur, nxt := w.cur.Cells(), w.nxt.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			neighbours := w.count(cur, x, y)
			alive := cur[idx] == grid.Alive
			nxt[idx] = grid.Dead
			if (alive && (neighbours == 2 || neighbours == 3)) || (!alive && neighbours == 3) {
				nxt[idx] = grid.Alive
			}
		}
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.gen++
}
