// Package directions converts between node-ID paths and move sequences.
//
// Reconstruct turns a path produced by the coverage search into the
// directions a walker would follow; Follow replays directions from a node
// and returns the rooms it passes through. Together they give a round
// trip: Follow(g, path[0], Reconstruct(g, path)) == path.
//
// When several exits of a node lead to the same neighbor, Reconstruct
// picks the first one in canonical order (n, s, e, w).
package directions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/coverwalk/core"
)

// ErrReconstructionMismatch indicates that a path contains a transition
// with no corresponding exit (or an unknown node). It signals an internal
// inconsistency and is never silently skipped.
var ErrReconstructionMismatch = errors.New("directions: path transition has no matching exit")

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("directions: graph is nil")

// Reconstruct returns one direction per transition of path, so
// len(result) == len(path)-1. A single-node path yields no moves.
//
// Complexity: O(len(path)).
func Reconstruct(g *core.Graph, path []string) ([]core.Direction, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(path) == 0 {
		return nil, nil
	}
	if !g.HasNode(path[0]) {
		return nil, fmt.Errorf("%w: unknown node %q at 0", ErrReconstructionMismatch, path[0])
	}
	moves := make([]core.Direction, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		d, err := between(g, path[i], path[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w at %d", err, i)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// between returns the first exit of from that leads to to.
func between(g *core.Graph, from, to string) (core.Direction, error) {
	for _, d := range g.Exits(from) {
		if nbr, _ := g.Neighbor(from, d); nbr == to {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q→%q", ErrReconstructionMismatch, from, to)
}

// Follow replays moves starting at from and returns every node passed,
// including from itself.
func Follow(g *core.Graph, from string, moves []core.Direction) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: unknown node %q", ErrReconstructionMismatch, from)
	}
	out := make([]string, 0, len(moves)+1)
	out = append(out, from)
	cur := from
	for i, d := range moves {
		next, ok := g.Neighbor(cur, d)
		if !ok {
			return nil, fmt.Errorf("%w: no exit %s from %q at %d", ErrReconstructionMismatch, d, cur, i)
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// Format renders moves as space-separated short forms, e.g. "n n e s".
func Format(moves []core.Direction) string {
	parts := make([]string, len(moves))
	for i, d := range moves {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// Parse is the inverse of Format. Any whitespace or commas separate moves.
func Parse(s string) ([]core.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	moves := make([]core.Direction, 0, len(fields))
	for _, f := range fields {
		d, err := core.ParseDirection(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}
