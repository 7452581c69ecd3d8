package grid

import (
	"errors"
	"testing"
)

// asymmetric returns a 4x3 grid with no rotational symmetry.
func asymmetric() *Grid {
	g := New(4, 3)
	g.Set(0, 0, Alive)
	g.Set(1, 0, Alive)
	g.Set(3, 1, Alive)
	g.Set(2, 2, Alive)
	return g
}

func TestCropFullIsIdentity(t *testing.T) {
	g := asymmetric()
	c, err := g.Crop(0, 0, g.Width(), g.Height())
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	if !c.Equal(g) {
		t.Fatalf("full crop differs:\n%s\n%s", c, g)
	}
	c.Set(3, 2, Alive)
	if v, _ := g.Get(3, 2); v != Dead {
		t.Fatal("crop shares storage with source")
	}
}

func TestCropWindow(t *testing.T) {
	g := asymmetric()
	c, err := g.Crop(1, 0, 4, 2)
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("crop size %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			got, _ := c.Get(x, y)
			want, _ := g.Get(x+1, y)
			if got != want {
				t.Fatalf("cropped cell (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
	empty, err := g.Crop(2, 1, 2, 1)
	if err != nil || empty.TotalCells() != 0 {
		t.Fatalf("empty crop: %v, %d cells", err, empty.TotalCells())
	}
}

func TestCropInvalidWindows(t *testing.T) {
	g := asymmetric()
	windows := [][4]int{
		{-1, 0, 2, 2},
		{0, -1, 2, 2},
		{3, 0, 2, 2},
		{0, 2, 2, 1},
		{0, 0, 5, 3},
		{0, 0, 4, 4},
	}
	for _, w := range windows {
		if _, err := g.Crop(w[0], w[1], w[2], w[3]); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("crop %v: expected ErrInvalidArgument, got %v", w, err)
		}
	}
}

func TestMergeOverwrite(t *testing.T) {
	dst := New(5, 5)
	dst.Fill(Alive)
	src := New(2, 2)
	src.Set(0, 0, Alive)
	if err := dst.Merge(src, 3, 3, false); err != nil {
		t.Fatalf("merge: %v", err)
	}
	expect := map[[2]int]Cell{{3, 3}: Alive, {4, 3}: Dead, {3, 4}: Dead, {4, 4}: Dead}
	for pos, want := range expect {
		if got, _ := dst.Get(pos[0], pos[1]); got != want {
			t.Fatalf("cell %v = %v, expected %v", pos, got, want)
		}
	}
	if dst.AliveCount() != 22 {
		t.Fatalf("cells outside the overlay changed: alive=%d", dst.AliveCount())
	}
}

func TestMergeAliveOnly(t *testing.T) {
	dst := New(4, 4)
	dst.Set(1, 1, Alive)
	src := New(2, 2)
	src.Set(1, 0, Alive)
	src.Set(0, 1, Alive)
	if err := dst.Merge(src, 1, 1, true); err != nil {
		t.Fatalf("merge: %v", err)
	}
	expect := map[[2]int]Cell{
		{1, 1}: Alive, // already alive, source dead
		{2, 1}: Alive, // dead, source alive
		{1, 2}: Alive,
		{2, 2}: Dead, // dead, source dead
	}
	for pos, want := range expect {
		if got, _ := dst.Get(pos[0], pos[1]); got != want {
			t.Fatalf("cell %v = %v, expected %v", pos, got, want)
		}
	}
	if dst.AliveCount() != 3 {
		t.Fatalf("alive count %d, expected 3", dst.AliveCount())
	}
}

func TestMergeRejectsMisfit(t *testing.T) {
	dst := New(4, 3)
	cases := []struct {
		src    *Grid
		x0, y0 int
	}{
		{New(5, 1), 0, 0},
		{New(1, 4), 0, 0},
		{New(2, 2), -1, 0},
		{New(2, 2), 0, -1},
		{New(2, 2), 3, 0},
		{New(2, 2), 0, 2},
	}
	for _, tc := range cases {
		err := dst.Merge(tc.src, tc.x0, tc.y0, false)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("merge %dx%d at (%d,%d): expected ErrInvalidArgument, got %v",
				tc.src.Width(), tc.src.Height(), tc.x0, tc.y0, err)
		}
	}
	if err := dst.Merge(New(4, 3), 0, 0, false); err != nil {
		t.Fatalf("exact fit rejected: %v", err)
	}
}

func TestRotateIdentityAndCycle(t *testing.T) {
	g := asymmetric()
	if !g.Rotate(0).Equal(g) {
		t.Fatal("rotate(0) is not identity")
	}
	r := g
	for i := 0; i < 4; i++ {
		r = r.Rotate(1)
	}
	if !r.Equal(g) {
		t.Fatalf("four quarter turns differ:\n%s\n%s", r, g)
	}
	for _, k := range []int{1, 3, -1, 7} {
		rk := g.Rotate(k)
		if rk.Width() != g.Height() || rk.Height() != g.Width() {
			t.Fatalf("rotate(%d) gave %dx%d", k, rk.Width(), rk.Height())
		}
	}
	if !g.Rotate(-1).Equal(g.Rotate(3)) {
		t.Fatal("rotate(-1) != rotate(3)")
	}
	if !g.Rotate(1_000_000_001).Equal(g.Rotate(1)) {
		t.Fatal("large rotation not normalised")
	}
	if !g.Rotate(2).Equal(g.Rotate(1).Rotate(1)) {
		t.Fatal("rotate(2) != two quarter turns")
	}
}

func TestRotateMappings(t *testing.T) {
	g := asymmetric()
	w, h := g.Width(), g.Height()
	r1, r2, r3 := g.Rotate(1), g.Rotate(2), g.Rotate(3)
	for j := 0; j < w; j++ {
		for i := 0; i < h; i++ {
			got, _ := r1.Get(i, j)
			want, _ := g.Get(j, h-1-i)
			if got != want {
				t.Fatalf("rotate(1) (%d,%d) = %v, expected %v", i, j, got, want)
			}
			got, _ = r3.Get(i, j)
			want, _ = g.Get(w-1-j, i)
			if got != want {
				t.Fatalf("rotate(3) (%d,%d) = %v, expected %v", i, j, got, want)
			}
		}
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			got, _ := r2.Get(i, j)
			want, _ := g.Get(w-1-i, h-1-j)
			if got != want {
				t.Fatalf("rotate(2) (%d,%d) = %v, expected %v", i, j, got, want)
			}
		}
	}
	// Top-left cell ends up top-right after a clockwise quarter turn.
	if c, _ := r1.Get(h-1, 0); c != Alive {
		t.Fatalf("clockwise rotation misplaced the corner:\n%s", r1)
	}
}
