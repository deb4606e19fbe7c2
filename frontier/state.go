package frontier

import (
	"math/bits"

	"github.com/katalvlaran/coverwalk/core"
)

// State is one in-progress search branch. The zero State is empty and has
// no current node; use Seed to start a branch.
type State struct {
	path    []int
	visited []uint64
	count   int
}

// Seed returns the initial State of g: path [start], visited {start}.
func Seed(g *core.Graph) State {
	s := State{
		path:    []int{g.StartIndex()},
		visited: make([]uint64, (g.NodeCount()+63)/64),
	}
	s.mark(g.StartIndex())
	return s
}

// mark adds idx to the visited set. Only used while a fresh State is
// being constructed.
func (s *State) mark(idx int) {
	w, b := idx/64, uint(idx%64)
	if s.visited[w]&(1<<b) == 0 {
		s.visited[w] |= 1 << b
		s.count++
	}
}

// IsZero reports whether s is the zero State.
func (s State) IsZero() bool {
	return len(s.path) == 0
}

// Current returns the node index at the end of the path.
func (s State) Current() int {
	return s.path[len(s.path)-1]
}

// Len returns the number of node IDs in the path (moves + 1).
func (s State) Len() int {
	return len(s.path)
}

// Path returns a copy of the path as node indices.
func (s State) Path() []int {
	out := make([]int, len(s.path))
	copy(out, s.path)
	return out
}

// IDs returns the path as node IDs of g.
func (s State) IDs(g *core.Graph) []string {
	out := make([]string, len(s.path))
	for i, idx := range s.path {
		out[i] = g.ID(idx)
	}
	return out
}

// Visited reports whether idx appears in the path.
func (s State) Visited(idx int) bool {
	w := idx / 64
	if idx < 0 || w >= len(s.visited) {
		return false
	}
	return s.visited[w]&(1<<uint(idx%64)) != 0
}

// VisitedCount returns the number of distinct nodes in the path.
func (s State) VisitedCount() int {
	return s.count
}

// Covers reports whether the path visits all n nodes.
func (s State) Covers(n int) bool {
	return s.count == n
}

// Extend returns a new State whose path is s's path followed by next.
// The receiver is not modified and shares no memory with the result.
func (s State) Extend(next ...int) State {
	path := make([]int, len(s.path), len(s.path)+len(next))
	copy(path, s.path)
	out := State{
		path:    append(path, next...),
		visited: make([]uint64, len(s.visited)),
		count:   s.count,
	}
	copy(out.visited, s.visited)
	for _, idx := range next {
		out.mark(idx)
	}
	return out
}

// popcount recomputes the visited count from the bitset; used by tests
// via export_test.go to check the cached count.
func (s State) popcount() int {
	n := 0
	for _, w := range s.visited {
		n += bits.OnesCount64(w)
	}
	return n
}
