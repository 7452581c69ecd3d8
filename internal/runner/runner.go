// Package runner drives a World headlessly for a fixed number of generations.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"lifegrid/internal/core"
	"lifegrid/internal/observability"
	"lifegrid/pkg/sims/life"
)

// Options controls a run.
type Options struct {
	Steps int
	Edge  life.Edge
	// Every writes the rendering of every Every-th generation to Out. Zero
	// disables frames.
	Every int
	// TPS paces generations when positive; zero runs flat out.
	TPS int
	Out io.Writer
	// Observe, when set, is called after every generation.
	Observe func(*life.World)
}

// Result summarises a finished or interrupted run.
type Result struct {
	Generations int
	Alive       int
	Elapsed     time.Duration
}

// Run advances w by opts.Steps generations. Cancellation is observed between
// generations; the world is always left on a whole generation and the
// returned Result counts the generations that completed.
func Run(ctx context.Context, w *life.World, opts Options) (Result, error) {
	if opts.Steps < 0 {
		return Result{}, fmt.Errorf("runner: negative step count %d", opts.Steps)
	}
	if opts.Every > 0 && opts.Out == nil {
		return Result{}, fmt.Errorf("runner: frames requested without an output")
	}

	var pace *core.FixedStep
	if opts.TPS > 0 {
		pace = core.NewFixedStep(opts.TPS)
	}
	edge := opts.Edge.String()
	logger := log.With().Str("component", "runner").Str("edge", edge).Logger()
	logger.Debug().
		Int("width", w.Width()).
		Int("height", w.Height()).
		Int("steps", opts.Steps).
		Msg("run started")

	var (
		res   Result
		frame []byte
	)
	start := time.Now()
	finish := func(err error) (Result, error) {
		res.Alive = w.AliveCount()
		res.Elapsed = time.Since(start)
		observability.RecordAlive(res.Alive)
		logger.Debug().
			Int("generations", res.Generations).
			Int("alive", res.Alive).
			Dur("elapsed", res.Elapsed).
			Msg("run finished")
		return res, err
	}

	for i := 0; i < opts.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if pace != nil {
			if err := pace.Wait(ctx); err != nil {
				return finish(err)
			}
		}
		t0 := time.Now()
		w.Step(opts.Edge)
		observability.RecordStep(edge, time.Since(t0))
		res.Generations++

		if opts.Every > 0 && res.Generations%opts.Every == 0 {
			frame = fmt.Appendf(frame[:0], "generation %d\n", w.Generation())
			frame = w.AppendText(frame)
			if _, err := opts.Out.Write(frame); err != nil {
				return finish(fmt.Errorf("runner: write frame: %w", err))
			}
		}
		if opts.Observe != nil {
			opts.Observe(w)
		}
		logger.Trace().Uint64("generation", w.Generation()).Msg("step")
	}
	return finish(nil)
}
