package life

import (
	"fmt"
	"strings"
)

// Edge selects how neighbours beyond the grid border are treated.
type Edge uint8

const (
	// Bounded treats off-grid positions as permanently dead.
	Bounded Edge = iota
	// Toroidal wraps both axes modulo the grid size.
	Toroidal
)

func (e Edge) String() string {
	if e == Toroidal {
		return "toroidal"
	}
	return "bounded"
}

// ParseEdge accepts "bounded" or "toroidal" (also "torus" and "wrap").
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "bound", "":
		return Bounded, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return Bounded, fmt.Errorf("life: unknown edge policy %q", s)
}

// EdgeOf maps the boolean toroidal flag onto an Edge.
func EdgeOf(toroidal bool) Edge {
	if toroidal {
		return Toroidal
	}
	return Bounded
}

// axis builds the coordinate lookup for one axis of length n: entry c+1 holds
// the normalised index of coordinate c for c in [-1, n], or -1 when the
// position is off-grid.
func (e Edge) axis(n int, buf []int) []int {
	if cap(buf) < n+2 {
		buf = make([]int, n+2)
	}
	buf = buf[:n+2]
	for c := -1; c <= n; c++ {
		switch {
		case c >= 0 && c < n:
			buf[c+1] = c
		case e == Toroidal && n > 0:
			buf[c+1] = ((c % n) + n) % n
		default:
			buf[c+1] = -1
		}
	}
	return buf
}
