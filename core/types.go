package core

import (
	"errors"
	"fmt"
)

// ErrGraphInput is the root of every graph validation error.
var ErrGraphInput = errors.New("core: malformed graph input")

// Sentinel errors for graph construction and lookup. Each wraps ErrGraphInput.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = fmt.Errorf("%w: node ID is empty", ErrGraphInput)

	// ErrDuplicateNode indicates AddNode was called twice for one ID.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node", ErrGraphInput)

	// ErrUnknownDirection indicates a direction outside North/South/East/West.
	ErrUnknownDirection = fmt.Errorf("%w: unknown direction", ErrGraphInput)

	// ErrExitExists indicates an exit was re-linked to a different target.
	ErrExitExists = fmt.Errorf("%w: exit already linked", ErrGraphInput)

	// ErrDanglingExit indicates an exit whose target node was never added.
	ErrDanglingExit = fmt.Errorf("%w: exit leads to unknown node", ErrGraphInput)

	// ErrNodeNotFound indicates a referenced node does not exist.
	ErrNodeNotFound = fmt.Errorf("%w: node not found", ErrGraphInput)

	// ErrEmptyGraph indicates Build was called with no nodes.
	ErrEmptyGraph = fmt.Errorf("%w: graph has no nodes", ErrGraphInput)
)

// noExit marks an absent exit in the dense adjacency table.
const noExit = -1

// Graph is an immutable room graph with a designated start node.
//
// ids[i] is the ID of node index i; ids is sorted, so indices are stable
// for a given node set. adj[i][d] is the index reached from node i via
// Direction d, or noExit.
type Graph struct {
	ids   []string
	index map[string]int
	adj   [][numDirections]int
	start int
}

// Builder collects nodes and exits for a Graph.
//
// The zero value is not usable; call NewBuilder.
type Builder struct {
	nodes map[string]*[numDirections]string
	first string
	start string
}
