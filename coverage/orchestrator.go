package coverage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/frontier"
)

var tracer = otel.Tracer("coverwalk.coverage")

// run holds the orchestrator state of one Solve call.
type run struct {
	graph *core.Graph
	opts  Options
	log   *slog.Logger
	phase Phase
}

// Solve computes a route through g that visits every node at least once,
// starting at g.Start().
//
// Exhaustive mode returns the shortest route found by the full search or
// ErrUnreachableCoverage. Bounded mode returns the first route of at most
// MaxLength node IDs or ErrLimitExceeded. If the caller's ctx ends first,
// Solve returns ctx.Err(). A recovered worker panic is returned wrapped
// in ErrWorkerPanic.
//
// The returned Result carries RunID and the terminal Phase even on error.
func Solve(ctx context.Context, g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "coverage.Solve",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("strategy", o.Strategy.String()),
			attribute.String("mode", o.mode()),
			attribute.Int("nodes", g.NodeCount()),
			attribute.Int("workers", o.Workers),
			attribute.Int("max_length", o.MaxLength),
		),
	)
	defer span.End()

	r := &run{
		graph: g,
		opts:  o,
		log: o.Logger.With(
			slog.String("run_id", runID),
			slog.String("strategy", o.Strategy.String()),
			slog.String("mode", o.mode()),
		),
		phase: Running,
	}

	began := time.Now()
	res, err := r.execute(ctx)
	res.RunID = runID
	res.Strategy = o.Strategy
	res.Elapsed = time.Since(began)
	res.Phase = r.phase

	solveDuration.WithLabelValues(o.mode(), outcome(err)).Observe(res.Elapsed.Seconds())
	span.SetAttributes(
		attribute.Int("candidates", res.Candidates),
		attribute.Int("path_length", len(res.Path)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}

// execute spawns the workers, collects candidates and drives the phase
// machine to a terminal phase.
func (r *run) execute(ctx context.Context) (Result, error) {
	r.log.Debug("solve started",
		slog.Int("nodes", r.graph.NodeCount()),
		slog.Int("workers", r.opts.Workers),
		slog.Int("max_length", r.opts.MaxLength),
	)
	r.opts.OnPhase(Running)

	queue, err := frontier.NewQueue(frontier.WithIdleWait(r.opts.IdleWait))
	if err != nil {
		r.advance(DoneFailure)
		return Result{}, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	if r.opts.Strategy == Exhaustive {
		queue.Push(frontier.Seed(r.graph))
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(workCtx)

	results := make(chan frontier.State, r.opts.Workers)
	for i := 0; i < r.opts.Workers; i++ {
		w := &worker{
			id:      i,
			graph:   r.graph,
			opts:    r.opts,
			queue:   queue,
			results: results,
			rng:     workerRNG(r.opts.Seed, i),
			log:     r.log.With(slog.Int("worker", i)),
		}
		eg.Go(func() error { return w.run(egCtx) })
	}

	waited := make(chan error, 1)
	go func() {
		waited <- eg.Wait()
		close(results)
	}()

	var (
		best       frontier.State
		candidates int
		accepted   bool
	)
	for s := range results {
		candidates++
		candidatesTotal.WithLabelValues(r.opts.Strategy.String()).Inc()
		r.opts.OnCandidate(s.IDs(r.graph))

		if r.opts.bounded() {
			best, accepted = s, true
			r.log.Debug("candidate accepted", slog.Int("length", s.Len()))
			r.advance(Draining)
			cancel()
			break
		}
		if best.IsZero() || s.Len() < best.Len() {
			best = s
		}
	}
	if !accepted {
		r.advance(Draining)
	}
	werr := <-waited

	res := Result{Candidates: candidates}
	switch {
	case werr != nil:
		r.advance(DoneFailure)
		return res, werr
	case accepted:
		// A winner stands even if the caller cancelled while workers exited.
	case ctx.Err() != nil:
		r.advance(DoneFailure)
		return res, ctx.Err()
	case best.IsZero() && r.opts.bounded():
		r.advance(DoneFailure)
		return res, ErrLimitExceeded
	case best.IsZero():
		r.advance(DoneFailure)
		return res, ErrUnreachableCoverage
	}

	res.Path = best.IDs(r.graph)
	r.advance(DoneSuccess)
	r.log.Debug("solve finished",
		slog.Int("candidates", candidates),
		slog.Int("moves", res.Moves()),
	)
	return res, nil
}

// advance moves the phase machine to next, ignoring illegal transitions.
func (r *run) advance(next Phase) {
	if !r.phase.canAdvance(next) {
		return
	}
	r.log.Debug("phase transition",
		slog.String("from", r.phase.String()),
		slog.String("to", next.String()),
	)
	r.phase = next
	r.opts.OnPhase(next)
}

// outcome is the metrics label for a Solve error.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnreachableCoverage):
		return "unreachable"
	case errors.Is(err, ErrLimitExceeded):
		return "limit"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	}
	return "error"
}
