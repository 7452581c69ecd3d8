package grid

// Crop copies the window [x0,x1) x [y0,y1) into a new grid.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	switch {
	case x0 < 0 || y0 < 0 || x1 < 0 || y1 < 0:
		return nil, invalidf("crop (%d,%d)-(%d,%d): negative coordinate", x0, y0, x1, y1)
	case x0 > x1:
		return nil, invalidf("crop: x0 %d > x1 %d", x0, x1)
	case y0 > y1:
		return nil, invalidf("crop: y0 %d > y1 %d", y0, y1)
	case x1 > g.w:
		return nil, invalidf("crop: x1 %d exceeds width %d", x1, g.w)
	case y1 > g.h:
		return nil, invalidf("crop: y1 %d exceeds height %d", y1, g.h)
	}
	w, h := x1-x0, y1-y0
	out := New(w, h)
	for y := 0; y < h; y++ {
		src := (y+y0)*g.w + x0
		copy(out.cells[y*w:(y+1)*w], g.cells[src:src+w])
	}
	return out, nil
}

// Merge overlays other onto g with its top-left corner at (x0, y0). With
// aliveOnly set, live cells of other are copied onto dead cells of g and no
// cell of g is ever killed.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	switch {
	case other.w > g.w || other.h > g.h:
		return invalidf("merge: %dx%d source larger than %dx%d grid", other.w, other.h, g.w, g.h)
	case len(other.cells) > len(g.cells):
		return invalidf("merge: source area %d exceeds grid area %d", len(other.cells), len(g.cells))
	case x0 < 0 || y0 < 0:
		return invalidf("merge: negative origin (%d,%d)", x0, y0)
	case x0+other.w > g.w || y0+other.h > g.h:
		return invalidf("merge: %dx%d source at (%d,%d) does not fit %dx%d grid", other.w, other.h, x0, y0, g.w, g.h)
	}
	for y := 0; y < other.h; y++ {
		src := other.cells[y*other.w : (y+1)*other.w]
		dst := g.cells[(y+y0)*g.w+x0 : (y+y0)*g.w+x0+other.w]
		if !aliveOnly {
			copy(dst, src)
			continue
		}
		for i, c := range src {
			if c == Alive {
				dst[i] = Alive
			}
		}
	}
	return nil
}

// Rotate returns a copy turned k quarter-turns clockwise. Any k, positive or
// negative, costs a single pass.
func (g *Grid) Rotate(k int) *Grid {
	k = ((k % 4) + 4) % 4
	w, h := g.w, g.h
	switch k {
	case 1:
		out := New(h, w)
		for j := 0; j < w; j++ {
			for i := 0; i < h; i++ {
				out.cells[j*h+i] = g.cells[(h-1-i)*w+j]
			}
		}
		return out
	case 2:
		out := New(w, h)
		n := len(g.cells)
		for i, c := range g.cells {
			out.cells[n-1-i] = c
		}
		return out
	case 3:
		out := New(h, w)
		for j := 0; j < w; j++ {
			for i := 0; i < h; i++ {
				out.cells[j*h+i] = g.cells[i*w+(w-1-j)]
			}
		}
		return out
	}
	return g.Clone()
}
