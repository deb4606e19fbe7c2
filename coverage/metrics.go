package coverage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dead-end outcome labels.
const (
	deadEndExtended   = "extended"
	deadEndLimit      = "limit"
	deadEndStructural = "structural"
)

var (
	// forksTotal counts branches pushed by forking at unvisited neighbors.
	forksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coverwalk_forks_total",
		Help: "Branches created by forking at unvisited neighbors",
	})

	// deadEndsTotal counts resolver invocations by outcome.
	deadEndsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coverwalk_dead_ends_total",
		Help: "Dead-end resolutions by outcome",
	}, []string{"outcome"})

	candidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coverwalk_candidates_total",
		Help: "Full-coverage candidates received by strategy",
	}, []string{"strategy"})

	restartsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coverwalk_restarts_total",
		Help: "Random walks restarted by the randomized strategy",
	})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coverwalk_solve_duration_seconds",
		Help:    "Solve wall-clock duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	}, []string{"mode", "outcome"})
)
