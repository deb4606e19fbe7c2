// Package deadend extends a stalled search branch to the nearest node
// that borders unvisited territory.
//
// A branch is stalled when its current node has no unvisited neighbor.
// Resolve runs a breadth-first search from that node through exits in
// canonical order and stops at the first dequeued node that has an
// unvisited neighbor (according to the branch). Nodes the branch already
// visited are freely traversable, so the search keeps its own explored
// set instead of reusing the branch's visited set.
package deadend

import (
	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/frontier"
)

// step is one entry of the resolver's BFS: a node, the trail index of the
// node it was reached from, and its distance from the stalled node.
type step struct {
	node   int
	parent int // -1 for the stalled node
	depth  int
}

// walker encapsulates mutable resolution state.
type walker struct {
	graph    *core.Graph
	branch   frontier.State
	opts     Options
	trail    []step
	explored []bool
}

// Resolve returns s extended by the shortest exit sequence leading to a
// node with at least one neighbor s has not visited. The extension only
// passes through visited nodes, so the visited set of the result equals
// that of s.
//
// Ties go to the first qualifying node in BFS dequeue order, which follows
// the canonical direction order. If s's current node already borders an
// unvisited node, s is returned unchanged.
//
// Errors: ErrGraphNil, ErrStateEmpty, ErrOptionViolation, ErrLimitExceeded
// when every remaining candidate would exceed Options.Limit, and
// ErrStructuralDeadEnd when the reachable region is fully visited.
//
// Complexity: O(V) time and memory; each node is explored at most once.
func Resolve(g *core.Graph, s frontier.State, opts ...Option) (frontier.State, error) {
	if g == nil {
		return frontier.State{}, ErrGraphNil
	}
	if s.IsZero() {
		return frontier.State{}, ErrStateEmpty
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return frontier.State{}, o.err
	}

	n := g.NodeCount()
	w := &walker{
		graph:    g,
		branch:   s,
		opts:     o,
		trail:    make([]step, 0, n),
		explored: make([]bool, n),
	}
	w.trail = append(w.trail, step{node: s.Current(), parent: -1})

	return w.loop()
}

// loop pops trail entries in FIFO order until one borders unvisited
// territory, the limit is hit, or the trail is exhausted.
func (w *walker) loop() (frontier.State, error) {
	for head := 0; head < len(w.trail); head++ {
		cur := w.trail[head]
		// Depth never decreases in BFS order, so the first entry over the
		// limit means every later one is over too.
		if w.opts.Limit > 0 && w.branch.Len()+cur.depth > w.opts.Limit {
			return frontier.State{}, ErrLimitExceeded
		}
		if w.explored[cur.node] {
			continue
		}
		w.explored[cur.node] = true
		w.opts.OnExplore(w.graph.ID(cur.node))

		for _, d := range w.graph.ExitsAt(cur.node) {
			nbr, _ := w.graph.NeighborAt(cur.node, d)
			if !w.branch.Visited(nbr) {
				return w.branch.Extend(w.route(head)...), nil
			}
			if !w.explored[nbr] {
				w.trail = append(w.trail, step{node: nbr, parent: head, depth: cur.depth + 1})
			}
		}
	}
	return frontier.State{}, ErrStructuralDeadEnd
}

// route rebuilds the node sequence from the stalled node (exclusive) to
// trail[at] (inclusive).
func (w *walker) route(at int) []int {
	out := make([]int, w.trail[at].depth)
	for i := at; w.trail[i].parent >= 0; i = w.trail[i].parent {
		out[w.trail[i].depth-1] = w.trail[i].node
	}
	return out
}
