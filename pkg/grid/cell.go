package grid

import "fmt"

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Glyphs used by the canonical rendering and the ASCII file format.
const (
	DeadGlyph  = ' '
	AliveGlyph = '#'
)

// Valid reports whether c is Dead or Alive.
func (c Cell) Valid() bool { return c <= Alive }

// Rune returns the ASCII glyph for the cell.
func (c Cell) Rune() rune {
	if c == Alive {
		return AliveGlyph
	}
	return DeadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// ParseCell maps an ASCII glyph back to a cell.
func ParseCell(b byte) (Cell, error) {
	switch b {
	case DeadGlyph:
		return Dead, nil
	case AliveGlyph:
		return Alive, nil
	}
	return Dead, fmt.Errorf("grid: invalid cell glyph %q", b)
}
