package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"lifegrid/internal/runner"
	"lifegrid/internal/server"
	"lifegrid/pkg/sims/life"
	"lifegrid/pkg/zoo"
)

func cmdRun(e *env, args []string) error {
	fs := newFlagSet(e, "run", "")
	var src source
	src.bind(fs, e, true)
	steps := fs.Int("steps", e.settings.Steps, "generations to advance")
	edgeName := fs.String("edge", e.settings.Edge, "edge policy: bounded or toroidal")
	every := fs.Int("every", 0, "print every n-th generation (0 prints only the final board)")
	tps := fs.Int("tps", e.settings.TPS, "generations per second (0 runs unpaced)")
	out := fs.String("out", "", "write the final board to this .gol or .bgol file")
	listen := fs.String("listen", e.settings.ListenAddr, "serve /health, /metrics and /state on this address")
	quiet := fs.Bool("quiet", false, "do not print the final board")
	if err := parse(fs, args); err != nil {
		return err
	}

	edge, err := life.ParseEdge(*edgeName)
	if err != nil {
		return err
	}
	initial, err := src.load(e, true)
	if err != nil {
		return err
	}
	w := life.FromGrid(initial)

	opts := runner.Options{Steps: *steps, Edge: edge, Every: *every, TPS: *tps, Out: e.stdout}
	ctx, cancel := context.WithCancel(e.ctx)
	defer cancel()

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)
	if *listen != "" {
		board := &server.Board{}
		board.Publish(w, edge)
		opts.Observe = func(w *life.World) { board.Publish(w, edge) }
		srv := server.New(*listen, board, e.settings.CORSOrigins)
		wg.Add(1)
		go func() {
			defer wg.Done()
			serveErr <- srv.Serve(ctx)
		}()
	}

	res, err := runner.Run(ctx, w, opts)
	interrupted := errors.Is(err, context.Canceled) && e.ctx.Err() != nil
	if err != nil && !interrupted {
		cancel()
		wg.Wait()
		return err
	}
	msg := "run complete"
	if interrupted {
		// The world only ever holds whole generations, so the last one is
		// still worth keeping.
		msg = "run interrupted"
	}
	log.Info().
		Int("generations", res.Generations).
		Int("alive", res.Alive).
		Dur("elapsed", res.Elapsed).
		Msg(msg)

	if err := finish(e.stdout, w, *out, *quiet); err != nil {
		cancel()
		wg.Wait()
		return err
	}

	if interrupted {
		cancel()
		wg.Wait()
		return nil
	}
	if *listen != "" {
		log.Info().Str("addr", *listen).Msg("serving final state until interrupted")
		select {
		case <-e.ctx.Done():
		case err := <-serveErr:
			return fmt.Errorf("serve: %w", err)
		}
		cancel()
		wg.Wait()
		if err := <-serveErr; err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	}
	return nil
}

func finish(stdout io.Writer, w *life.World, out string, quiet bool) error {
	final := w.State()
	if out != "" {
		if err := zoo.Save(out, final); err != nil {
			return err
		}
	}
	if quiet {
		return nil
	}
	return printBoard(stdout, final)
}
