package main

import (
	"flag"
	"fmt"
	"io"

	"lifegrid/internal/store"
	"lifegrid/pkg/grid"
	"lifegrid/pkg/zoo"
)

// source picks where a command's starting board comes from.
type source struct {
	in      string
	pattern string
	slot    string
	width   int
	height  int
	density float64
	seed    int64
}

func (s *source) bind(fs *flag.FlagSet, e *env, random bool) {
	fs.StringVar(&s.in, "in", "", "board file (.gol or .bgol)")
	fs.StringVar(&s.pattern, "pattern", "", "built-in pattern, centred on a width x height board when random boards are allowed")
	fs.StringVar(&s.slot, "slot", "", "named board from the slot store")
	if random {
		fs.IntVar(&s.width, "width", e.settings.Width, "board width")
		fs.IntVar(&s.height, "height", e.settings.Height, "board height")
		fs.Float64Var(&s.density, "density", e.settings.Density, "live cell probability for random boards")
		fs.Int64Var(&s.seed, "seed", e.settings.Seed, "seed for random boards")
	}
}

func (s *source) load(e *env, random bool) (*grid.Grid, error) {
	picked := 0
	for _, v := range []string{s.in, s.pattern, s.slot} {
		if v != "" {
			picked++
		}
	}
	if picked > 1 {
		return nil, fmt.Errorf("choose one of -in, -pattern and -slot")
	}
	if picked == 0 && random {
		s.pattern = e.settings.Pattern
	}
	switch {
	case s.in != "":
		return zoo.Load(s.in)
	case s.slot != "":
		st, err := store.Open(e.settings.StoreApp)
		if err != nil {
			return nil, err
		}
		return st.Load(s.slot)
	case s.pattern != "":
		p, err := zoo.Pattern(s.pattern)
		if err != nil {
			return nil, err
		}
		if !random {
			return p, nil
		}
		return centre(p, s.width, s.height)
	case random:
		if s.width <= 0 || s.height <= 0 {
			return nil, fmt.Errorf("board size %dx%d", s.width, s.height)
		}
		return zoo.Soup(s.width, s.height, s.density, s.seed), nil
	}
	return nil, fmt.Errorf("no board given: use -in, -pattern or -slot")
}

// centre places p in the middle of a w*h board, growing the board when the
// pattern does not fit.
func centre(p *grid.Grid, w, h int) (*grid.Grid, error) {
	w, h = max(w, p.Width()), max(h, p.Height())
	board := grid.New(w, h)
	if err := board.Merge(p, (w-p.Width())/2, (h-p.Height())/2, true); err != nil {
		return nil, err
	}
	return board, nil
}

func printBoard(out io.Writer, g *grid.Grid) error {
	if _, err := g.WriteTo(out); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%dx%d alive=%d dead=%d\n", g.Width(), g.Height(), g.AliveCount(), g.DeadCount())
	return err
}
