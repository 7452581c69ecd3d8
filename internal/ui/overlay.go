//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifegrid/internal/core"
	"lifegrid/pkg/sims/life"
)

type edgeReporter interface {
	Edge() life.Edge
}

// Overlay draws grid lines and a status line over the board.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool
	paused   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int, showGrid bool) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showGrid: showGrid}
}

// Update toggles the grid with G and records the pause state for the status
// line.
func (o *Overlay) Update(paused bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.paused = paused
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	// Lines closer than 3px apart hide the cells they separate.
	if o.showGrid && o.scale >= 3 {
		o.drawGrid(screen, size)
	}
	status := "running"
	if o.paused {
		status = "paused"
	}
	if r, ok := o.sim.(edgeReporter); ok {
		status = fmt.Sprintf("%s  %s", status, r.Edge())
	}
	drawText(screen, status, 4, 2, color.RGBA{R: 255, G: 200, B: 40, A: 255})
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	line := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	w := float32(size.W * o.scale)
	h := float32(size.H * o.scale)
	for x := 0; x <= size.W; x++ {
		fx := float32(x * o.scale)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, line, false)
	}
	for y := 0; y <= size.H; y++ {
		fy := float32(y * o.scale)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, line, false)
	}
}
