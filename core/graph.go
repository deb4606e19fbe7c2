package core

import "fmt"

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// Start returns the ID of the start node.
func (g *Graph) Start() string {
	return g.ids[g.start]
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// IDs returns every node ID in index order (lexicographic).
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Neighbor returns the node reached from id via dir.
// ok is false when id is unknown or the exit is absent.
func (g *Graph) Neighbor(id string, dir Direction) (string, bool) {
	i, ok := g.index[id]
	if !ok {
		return "", false
	}
	j, ok := g.NeighborAt(i, dir)
	if !ok {
		return "", false
	}
	return g.ids[j], true
}

// Exits returns the directions that have an exit from id, in canonical
// order. Unknown IDs have no exits.
func (g *Graph) Exits(id string) []Direction {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.ExitsAt(i)
}

// StartAt returns a Graph with the same topology and a different start.
// The topology tables are shared, not copied.
func (g *Graph) StartAt(id string) (*Graph, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, id)
	}
	return &Graph{ids: g.ids, index: g.index, adj: g.adj, start: i}, nil
}

// Index-level accessors. Search code works on dense indices in
// [0, NodeCount()); they are not range-checked beyond what slice
// indexing does.

// Index maps a node ID to its dense index.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// ID maps a dense index back to its node ID.
func (g *Graph) ID(idx int) string {
	return g.ids[idx]
}

// StartIndex returns the dense index of the start node.
func (g *Graph) StartIndex() int {
	return g.start
}

// NeighborAt returns the index reached from node idx via dir.
func (g *Graph) NeighborAt(idx int, dir Direction) (int, bool) {
	if !dir.Valid() {
		return 0, false
	}
	j := g.adj[idx][dir]
	if j == noExit {
		return 0, false
	}
	return j, true
}

// ExitsAt returns the directions with an exit from node idx, in
// canonical order.
func (g *Graph) ExitsAt(idx int) []Direction {
	out := make([]Direction, 0, numDirections)
	for _, d := range directionOrder {
		if g.adj[idx][d] != noExit {
			out = append(out, d)
		}
	}
	return out
}
