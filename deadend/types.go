// Package deadend provides tunable options and error definitions for
// resolving stalled search branches.
package deadend

import (
	"errors"
	"fmt"
)

// Sentinel errors for dead-end resolution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("deadend: graph is nil")

	// ErrStateEmpty is returned for the zero frontier.State.
	ErrStateEmpty = errors.New("deadend: state has no current node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("deadend: invalid option supplied")

	// ErrLimitExceeded is returned when the shortest extension would push
	// the path beyond the configured limit.
	ErrLimitExceeded = errors.New("deadend: extension exceeds path limit")

	// ErrStructuralDeadEnd is returned when no node reachable from the
	// current one has an unvisited neighbor.
	ErrStructuralDeadEnd = errors.New("deadend: no reachable node borders unvisited territory")
)

// Option configures Resolve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Resolve.
type Options struct {
	// Limit, if > 0, is the maximum length (in node IDs) of the extended
	// path. 0 disables the limit.
	Limit int

	// OnExplore is called once for every node added to the resolver's
	// explored set, in BFS order.
	OnExplore func(id string)

	err error
}

// DefaultOptions returns Options with no limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Limit:     0,
		OnExplore: func(string) {},
	}
}

// WithLimit caps the extended path length.
//
//	n > 0:  limit to n node IDs
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithOnExplore registers a callback fired as nodes are explored.
func WithOnExplore(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}
