//go:build !ebiten

package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/ui"
)

// Game is the headless stand-in for the GUI game. It keeps the same
// pause/step/reset behaviour without a window so the control flow can be
// driven from tests; key handling needs the 'ebiten' tag.
type Game struct {
	sim      core.Sim
	overlay  *ui.Overlay
	hud      *ui.HUD
	pace     *core.FixedStep
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a headless Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		overlay:  ui.NewOverlay(sim, cfg.Scale, cfg.Grid),
		hud:      ui.NewHUD(sim, cfg.HUD),
		pace:     core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUD,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// SetPaused pauses or resumes stepping.
func (g *Game) SetPaused(p bool) { g.paused = p }

// StepOnce requests a single generation on the next Update, even when paused.
func (g *Game) StepOnce() { g.tickOnce = true }

// Update advances the simulation when a tick is due.
func (g *Game) Update() error {
	g.overlay.Update(g.paused)
	g.hud.Update(g.sim.Size().W * g.scale)
	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pace.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw forwards to the headless overlay and HUD, which draw nothing.
func (g *Game) Draw(screen any) {
	s := g.sim.Size()
	g.overlay.Draw(screen)
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size the GUI build would use.
func (g *Game) Layout(int, int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
