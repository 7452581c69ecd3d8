// Package zoo provides canned patterns and the .gol/.bgol file codecs.
package zoo

import (
	"fmt"
	"sort"

	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/grid"
)

func build(w, h int, alive ...[2]int) *grid.Grid {
	g := grid.New(w, h)
	for _, p := range alive {
		g.Set(p[0], p[1], grid.Alive)
	}
	return g
}

// Glider returns a 3x3 glider heading towards +x,+y.
//
//	+---+
//	| # |
//	|  #|
//	|###|
//	+---+
func Glider() *grid.Grid {
	return build(3, 3, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

// RPentomino returns the 3x3 R-pentomino methuselah.
//
//	+---+
//	| ##|
//	|## |
//	| # |
//	+---+
func RPentomino() *grid.Grid {
	return build(3, 3, [2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2})
}

// LightWeightSpaceship returns a 5x4 spaceship heading towards -x.
//
//	+-----+
//	| #  #|
//	|#    |
//	|#   #|
//	|#### |
//	+-----+
func LightWeightSpaceship() *grid.Grid {
	return build(5, 4,
		[2]int{1, 0}, [2]int{4, 0},
		[2]int{0, 1},
		[2]int{0, 2}, [2]int{4, 2},
		[2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})
}

// Block returns the 2x2 still life.
func Block() *grid.Grid {
	return build(2, 2, [2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
}

// Blinker returns the period-2 oscillator in its vertical phase.
func Blinker() *grid.Grid {
	return build(1, 3, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
}

// Soup returns a w*h board where each cell is alive with probability density.
func Soup(w, h int, density float64, seed int64) *grid.Grid {
	rng := pcore.NewRNG(seed)
	g := grid.New(w, h)
	cells := g.Cells()
	for i := range cells {
		if rng.Chance(density) {
			cells[i] = grid.Alive
		}
	}
	return g
}

var patterns = map[string]func() *grid.Grid{
	"glider":  Glider,
	"rpent":   RPentomino,
	"lwss":    LightWeightSpaceship,
	"block":   Block,
	"blinker": Blinker,
}

// Pattern returns a fresh copy of the named pattern.
func Pattern(name string) (*grid.Grid, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return f(), nil
}

// Names lists the available pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
