package coverage

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// DeadEndsExtended reads the resolver success counter.
func DeadEndsExtended() float64 {
	return testutil.ToFloat64(deadEndsTotal.WithLabelValues(deadEndExtended))
}

// RunBrokenWorker runs a worker without a graph so that it panics.
func RunBrokenWorker() error {
	w := &worker{
		opts: Options{Strategy: RandomizedRestart, MaxRestarts: 1},
		rng:  workerRNG(0, 0),
		log:  slog.New(slog.DiscardHandler),
	}
	return w.run(context.Background())
}

// WorkerStream returns the first n draws of worker id's random stream.
func WorkerStream(seed int64, id, n int) []int64 {
	r := workerRNG(seed, id)
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}

// CanAdvance exposes the phase transition table.
func CanAdvance(from, to Phase) bool {
	return from.canAdvance(to)
}
