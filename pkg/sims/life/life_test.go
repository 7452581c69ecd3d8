package life

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/pkg/grid"
)

func TestBlinkerOscillationThroughSim(t *testing.T) {
	life := New(5, 5)
	life.SetEdge(Bounded)
	life.World().Load(gridWith(5, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3}))

	w := life.Size().W
	life.Step()
	cells := life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.Density = 0.3

	a := NewWithConfig(cfg)
	a.Reset(99)
	b := NewWithConfig(cfg)
	b.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Reset with the same seed is not deterministic")
	}
	if a.World().AliveCount() == 0 {
		t.Fatal("random reset produced an empty board")
	}
	a.Step()
	a.Reset(99)
	if !slices.Equal(a.Cells(), b.Cells()) || a.World().Generation() != 0 {
		t.Fatal("Reset did not rebuild the board from scratch")
	}
}

func TestResetPlacesPatternCentred(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 9, 9
	cfg.Pattern = "glider"
	l := NewWithConfig(cfg)
	l.Reset(1)

	want := gridWith(9, 9, offset(gliderCells, 3, 3)...)
	if !l.World().State().Equal(want) {
		t.Fatalf("pattern not centred:\n%s", l.World().State())
	}

	cfg.Width, cfg.Height = 2, 2
	small := NewWithConfig(cfg)
	small.Reset(1)
	if small.World().AliveCount() != 1 {
		t.Fatalf("clipped glider has %d live cells, expected 1", small.World().AliveCount())
	}
}

func TestParameterSetters(t *testing.T) {
	l := New(8, 8)
	if l.Edge() != Toroidal {
		t.Fatal("default edge must be toroidal")
	}
	if !l.SetIntParameter("toroidal", 0) || l.Edge() != Bounded {
		t.Fatal("toroidal=0 not applied")
	}
	if l.SetIntParameter("toroidal", 2) || l.SetIntParameter("unknown", 1) {
		t.Fatal("invalid int parameter accepted")
	}
	if !l.SetFloatParameter("density", 0.25) {
		t.Fatal("density rejected")
	}
	if l.SetFloatParameter("density", 1.5) {
		t.Fatal("out of range density accepted")
	}

	values := map[string]string{}
	for _, g := range l.Parameters().Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["density"] != "0.25" || values["toroidal"] != "0" || values["generation"] != "0" {
		t.Fatalf("unexpected snapshot: %v", values)
	}
	if len(l.ParameterControls()) != 2 {
		t.Fatal("expected density and toroidal controls")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "40", "h": "-3", "edge": "bounded", "density": "0.1", "pattern": "block"})
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("dimensions %dx%d", c.Width, c.Height)
	}
	if c.Toroidal || c.Density != 0.1 || c.Pattern != "block" {
		t.Fatalf("unexpected config %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "10"})
	if sim.Size() != (core.Size{W: 12, H: 10}) {
		t.Fatalf("factory size %+v", sim.Size())
	}
	if len(sim.Cells()) != 120 {
		t.Fatalf("cells length %d", len(sim.Cells()))
	}
	sim.Reset(3)
	sim.Step()
	for _, c := range sim.Cells() {
		if c != uint8(grid.Dead) && c != uint8(grid.Alive) {
			t.Fatalf("unexpected cell value %d", c)
		}
	}
}
