package core

import (
	"fmt"
	"sort"
)

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make(map[string]*[numDirections]string)}
}

// AddNode registers a node with no exits.
// Returns ErrEmptyNodeID or ErrDuplicateNode.
func (b *Builder) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := b.nodes[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	b.add(id)
	return nil
}

// add inserts id unconditionally and remembers the first node ever added.
func (b *Builder) add(id string) *[numDirections]string {
	exits := new([numDirections]string)
	b.nodes[id] = exits
	if b.first == "" {
		b.first = id
	}
	return exits
}

// Link records a one-way exit from→dir→to. The from node is created if it
// does not exist yet; to must exist by the time Build runs.
// Linking the same exit to the same target twice is a no-op.
func (b *Builder) Link(from string, dir Direction, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(dir))
	}
	exits, ok := b.nodes[from]
	if !ok {
		exits = b.add(from)
	}
	switch cur := exits[dir]; cur {
	case "", to:
		exits[dir] = to
		return nil
	default:
		return fmt.Errorf("%w: %s→%s already leads to %q, not %q", ErrExitExists, from, dir, cur, to)
	}
}

// Connect records a→dir→b and the explicit return exit b→Opposite(dir)→a.
// Both nodes are created if missing.
func (b *Builder) Connect(a string, dir Direction, c string) error {
	if err := b.Link(a, dir, c); err != nil {
		return err
	}
	return b.Link(c, dir.Opposite(), a)
}

// SetStart designates the start node. Without a call to SetStart the
// first node added becomes the start.
func (b *Builder) SetStart(id string) {
	b.start = id
}

// Len returns the number of nodes registered so far.
func (b *Builder) Len() int {
	return len(b.nodes)
}

// Build validates the accumulated nodes and returns an immutable Graph.
// Returns ErrEmptyGraph, ErrNodeNotFound (start missing) or ErrDanglingExit.
//
// Complexity: O(V log V) time, O(V) space.
func (b *Builder) Build() (*Graph, error) {
	if len(b.nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	start := b.start
	if start == "" {
		start = b.first
	}
	if _, ok := b.nodes[start]; !ok {
		return nil, fmt.Errorf("%w: start %q", ErrNodeNotFound, start)
	}

	ids := make([]string, 0, len(b.nodes))
	for id := range b.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj := make([][numDirections]int, len(ids))
	for i, id := range ids {
		exits := b.nodes[id]
		for _, d := range directionOrder {
			adj[i][d] = noExit
			target := exits[d]
			if target == "" {
				continue
			}
			j, ok := index[target]
			if !ok {
				return nil, fmt.Errorf("%w: %s→%s→%q", ErrDanglingExit, id, d, target)
			}
			adj[i][d] = j
		}
	}

	return &Graph{ids: ids, index: index, adj: adj, start: index[start]}, nil
}
