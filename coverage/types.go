package coverage

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/coverwalk/frontier"
)

// Sentinel errors for Solve.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coverage: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coverage: invalid option supplied")

	// ErrUnreachableCoverage is returned in exhaustive mode when no branch
	// ever visited every node.
	ErrUnreachableCoverage = errors.New("coverage: no route visits every node")

	// ErrLimitExceeded is returned in bounded mode when no full-coverage
	// route fits within the length limit.
	ErrLimitExceeded = errors.New("coverage: no full-coverage route within the length limit")

	// ErrWorkerPanic wraps a panic recovered inside a search worker.
	ErrWorkerPanic = errors.New("coverage: search worker panicked")
)

// Strategy selects how workers explore the graph.
type Strategy int

const (
	// Exhaustive forks every branch at every unvisited neighbor through
	// the shared queue.
	Exhaustive Strategy = iota

	// RandomizedRestart has each worker repeat seeded random walks from
	// the start node, up to Options.MaxRestarts attempts.
	RandomizedRestart
)

// String returns "exhaustive" or "random".
func (s Strategy) String() string {
	switch s {
	case Exhaustive:
		return "exhaustive"
	case RandomizedRestart:
		return "random"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a name produced by Strategy.String (or "randomized")
// back to the Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exhaustive", "":
		return Exhaustive, nil
	case "random", "randomized":
		return RandomizedRestart, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// DefaultMaxRestarts is the per-worker attempt budget of RandomizedRestart.
const DefaultMaxRestarts = 256

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the parameters and hooks of one Solve call.
type Options struct {
	// Workers is the size of the worker pool (≥ 1).
	Workers int

	// MaxLength, if > 0, switches Solve to bounded mode: routes longer
	// than MaxLength node IDs are discarded and the first candidate wins.
	MaxLength int

	// Strategy selects the exploration strategy.
	Strategy Strategy

	// Seed drives RandomizedRestart. Each worker derives its own stream.
	Seed int64

	// MaxRestarts caps the random walks per RandomizedRestart worker.
	MaxRestarts int

	// IdleWait is the bounded wait of an idle worker on the queue.
	IdleWait time.Duration

	// Logger receives debug logs. Never nil after DefaultOptions.
	Logger *slog.Logger

	// OnPhase observes orchestrator phase transitions, in order.
	OnPhase func(p Phase)

	// OnCandidate observes every candidate received, in arrival order.
	OnCandidate func(path []string)

	err error
}

// DefaultOptions returns exhaustive-mode Options with one worker per CPU,
// a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Workers:     runtime.NumCPU(),
		MaxLength:   0,
		Strategy:    Exhaustive,
		MaxRestarts: DefaultMaxRestarts,
		IdleWait:    frontier.DefaultIdleWait,
		Logger:      slog.New(slog.DiscardHandler),
		OnPhase:     func(Phase) {},
		OnCandidate: func([]string) {},
	}
}

// bounded reports whether o selects bounded mode.
func (o Options) bounded() bool {
	return o.MaxLength > 0
}

// mode is the metrics/logging label for o's mode.
func (o Options) mode() string {
	if o.bounded() {
		return "bounded"
	}
	return "exhaustive"
}

// WithWorkers sets the worker pool size. n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxLength sets the route length limit in node IDs.
//
//	n > 0:  bounded mode
//	n == 0: exhaustive mode
//	n < 0:  invalid → ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithStrategy selects the exploration strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Exhaustive && s != RandomizedRestart {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithSeed sets the base seed of RandomizedRestart.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxRestarts caps random walks per worker. n < 1 → ErrOptionViolation.
func WithMaxRestarts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRestarts must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRestarts = n
	}
}

// WithIdleWait sets how long an idle worker waits on the queue before
// re-checking. d <= 0 → ErrOptionViolation.
func WithIdleWait(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: IdleWait must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.IdleWait = d
	}
}

// WithLogger routes debug logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPhase registers a phase-transition hook.
func WithOnPhase(fn func(p Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnCandidate registers a hook fired for every candidate received.
func WithOnCandidate(fn func(path []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	// RunID identifies the Solve call in logs and traces.
	RunID string

	// Path is the chosen route as node IDs, starting at the start node.
	Path []string

	// Candidates counts the full-coverage routes received.
	Candidates int

	// Phase is the terminal phase reached.
	Phase Phase

	Strategy Strategy
	Elapsed  time.Duration
}

// Moves returns the number of moves of the route (len(Path) - 1).
func (r Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
