//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/observability"
	_ "lifegrid/pkg/sims/life"
)

func main() {
	observability.InitLogger("ca")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal().Err(err).Msg("select sim")
	}
	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}

	sim := factory(simCfg)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()
	log.Info().
		Str("sim", sim.Name()).
		Int("width", size.W).
		Int("height", size.H).
		Int64("seed", cfg.Seed).
		Msg("starting")

	ebiten.SetWindowTitle("lifegrid - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game exited")
		os.Exit(1)
	}
}
