package coverage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/deadend"
	"github.com/katalvlaran/coverwalk/frontier"
)

// worker is one member of the search pool. Everything except rng is
// shared, read-only or synchronized.
type worker struct {
	id      int
	graph   *core.Graph
	opts    Options
	queue   *frontier.Queue
	results chan<- frontier.State
	rng     *rand.Rand
	log     *slog.Logger
}

// run executes the configured strategy until it runs out of work or ctx
// is done. A panic is recovered and returned as ErrWorkerPanic.
func (w *worker) run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("search worker panicked", slog.Any("panic", r))
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w.id, r)
		}
	}()

	w.log.Debug("search worker started")
	defer w.log.Debug("search worker exited")

	if w.opts.Strategy == RandomizedRestart {
		w.restartLoop(ctx)
		return nil
	}
	w.expandLoop(ctx)
	return nil
}

// expandLoop pops branches until the queue is drained or ctx is done.
// Empty only means other workers still hold branches that may fork.
func (w *worker) expandLoop(ctx context.Context) {
	for {
		s, status := w.queue.Pop(ctx)
		switch status {
		case frontier.Drained, frontier.Cancelled:
			return
		case frontier.Empty:
			continue
		}
		w.expand(ctx, s)
	}
}

// expand processes one popped branch. Done is deferred so the branch
// leaves the in-flight count after all of its children are queued, even
// on panic.
func (w *worker) expand(ctx context.Context, s frontier.State) {
	defer w.queue.Done()

	if w.opts.bounded() && s.Len() > w.opts.MaxLength {
		return
	}
	if s.Covers(w.graph.NodeCount()) {
		w.emit(ctx, s)
		return
	}

	open := w.unvisited(s)
	if len(open) > 0 {
		for _, nbr := range open {
			w.queue.Push(s.Extend(nbr))
		}
		forksTotal.Add(float64(len(open)))
		return
	}

	next, ok := w.resolve(s)
	if ok {
		w.queue.Push(next)
	}
}

// restartLoop runs up to MaxRestarts random walks, emitting every one
// that covers the graph.
func (w *worker) restartLoop(ctx context.Context) {
	for attempt := 0; attempt < w.opts.MaxRestarts; attempt++ {
		if ctx.Err() != nil {
			return
		}
		if attempt > 0 {
			restartsTotal.Inc()
		}
		if s, ok := w.walk(ctx); ok {
			w.emit(ctx, s)
		}
	}
}

// walk extends one branch from the start node, choosing uniformly among
// unvisited neighbors and resolving dead ends, until it covers the graph
// (true) or overruns the limit, hits a structural dead end or ctx is done
// (false).
func (w *worker) walk(ctx context.Context) (frontier.State, bool) {
	n := w.graph.NodeCount()
	s := frontier.Seed(w.graph)
	for !s.Covers(n) {
		if ctx.Err() != nil {
			return frontier.State{}, false
		}
		open := w.unvisited(s)
		if len(open) == 0 {
			next, ok := w.resolve(s)
			if !ok {
				return frontier.State{}, false
			}
			s = next
			continue
		}
		s = s.Extend(open[w.rng.Intn(len(open))])
		if w.opts.bounded() && s.Len() > w.opts.MaxLength {
			return frontier.State{}, false
		}
	}
	return s, true
}

// unvisited returns the distinct unvisited neighbors of s's current node
// in direction order.
func (w *worker) unvisited(s frontier.State) []int {
	var open []int
	cur := s.Current()
	for _, d := range w.graph.ExitsAt(cur) {
		nbr, _ := w.graph.NeighborAt(cur, d)
		if s.Visited(nbr) || contains(open, nbr) {
			continue
		}
		open = append(open, nbr)
	}
	return open
}

// resolve delegates a stalled branch to the dead-end resolver. A branch
// the resolver cannot extend is dropped, never escalated.
func (w *worker) resolve(s frontier.State) (frontier.State, bool) {
	next, err := deadend.Resolve(w.graph, s, deadend.WithLimit(w.opts.MaxLength))
	switch {
	case err == nil:
		deadEndsTotal.WithLabelValues(deadEndExtended).Inc()
		return next, true
	case errors.Is(err, deadend.ErrLimitExceeded):
		deadEndsTotal.WithLabelValues(deadEndLimit).Inc()
	default:
		deadEndsTotal.WithLabelValues(deadEndStructural).Inc()
	}
	return frontier.State{}, false
}

// emit hands a candidate to the orchestrator unless ctx is done first.
func (w *worker) emit(ctx context.Context, s frontier.State) {
	select {
	case w.results <- s:
	case <-ctx.Done():
	}
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
