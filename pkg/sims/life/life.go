package life

import (
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/pkg/grid"
	"lifegrid/pkg/zoo"
)

// Life adapts a World to the core.Sim contract used by the GUI and the sim
// registry. The edge policy is fixed per instance but may be toggled.
type Life struct {
	cfg   Config
	world *World
	edge  Edge
	cells []uint8
}

// New returns a toroidal Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a simulation from cfg. The board starts empty until
// Reset is called.
func NewWithConfig(cfg Config) *Life {
	l := &Life{cfg: cfg, world: NewWorld(cfg.Width, cfg.Height), edge: EdgeOf(cfg.Toroidal)}
	l.refresh()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.world.Width(), H: l.world.Height()} }

// Cells exposes the current generation as 0/1 values.
func (l *Life) Cells() []uint8 { return l.cells }

// World returns the underlying world.
func (l *Life) World() *World { return l.world }

// Edge returns the edge policy used by Step.
func (l *Life) Edge() Edge { return l.edge }

// SetEdge changes the edge policy used by Step.
func (l *Life) SetEdge(e Edge) { l.edge = e }

// Reset reseeds the board. With a configured pattern the pattern is placed in
// the centre of an empty board; otherwise cells are filled at random.
func (l *Life) Reset(seed int64) {
	w, h := l.world.Width(), l.world.Height()
	if p, err := zoo.Pattern(l.cfg.Pattern); err == nil {
		board := grid.New(w, h)
		placeCentred(board, p)
		l.world.Load(board)
	} else {
		l.world.Load(zoo.Soup(w, h, l.cfg.Density, seed))
	}
	l.refresh()
}

// placeCentred merges p into the middle of board, clipping it when it is
// larger than the board.
func placeCentred(board, p *grid.Grid) {
	w, h := min(p.Width(), board.Width()), min(p.Height(), board.Height())
	if w != p.Width() || h != p.Height() {
		p, _ = p.Crop(0, 0, w, h)
	}
	_ = board.Merge(p, (board.Width()-w)/2, (board.Height()-h)/2, true)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.world.Step(l.edge)
	l.refresh()
}

func (l *Life) refresh() {
	l.cells = l.world.cur.Export(l.cells)
}

// Parameters reports the live state for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	toroidal := "0"
	if l.edge == Toroidal {
		toroidal = "1"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.world.Generation(), 10)},
				{Key: "alive", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(l.world.AliveCount())},
			},
		},
		{
			Name:    "Rules",
			Summary: "edge policy and reset density",
			Params: []core.Parameter{
				{Key: "toroidal", Label: "Toroidal", Type: core.ParamTypeInt, Value: toroidal, Description: l.edge.String()},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', 2, 64)},
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "toroidal", Label: "Toroidal", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates integer parameters. Only "toroidal" is supported.
func (l *Life) SetIntParameter(key string, value int) bool {
	if key != "toroidal" || value < 0 || value > 1 {
		return false
	}
	l.edge = EdgeOf(value == 1)
	return true
}

// SetFloatParameter updates floating point parameters. Only "density" is
// supported; it takes effect on the next random reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	l.cfg.Density = value
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
