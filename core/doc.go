// Package core defines the room graph consumed by the coverage search:
// a fixed set of nodes, each with up to four labeled exits, plus one
// designated start node.
//
// What
//
//   - Direction is a small enumeration (North, South, East, West) with a
//     fixed iteration order n, s, e, w. Every routine that walks exits
//     (forking, dead-end resolution, direction reconstruction) uses that
//     order, so tie-breaks are reproducible.
//   - Builder accumulates nodes and exits and validates them once in Build.
//   - Graph is the immutable result. Node IDs are mapped to dense indices
//     in lexicographic order so search code can keep visited sets as
//     bitsets instead of maps.
//
// Edges
//
//	Exits are one-way. Link(a, East, b) says nothing about how to get from
//	b back to a; Connect(a, East, b) records both a→East→b and b→West→a.
//	A reverse edge is always data, never inferred.
//
// Concurrency
//
//	A Graph is never mutated after Build returns, so every query is safe
//	for concurrent use without locking. A Builder is not safe for
//	concurrent use.
//
// Errors
//
//	Every validation failure wraps ErrGraphInput, so callers that only
//	care about "the input was malformed" can test for that one sentinel:
//
//	  - ErrEmptyNodeID      node ID is the empty string.
//	  - ErrDuplicateNode    AddNode for an ID that already exists.
//	  - ErrUnknownDirection direction outside the enumeration.
//	  - ErrExitExists       exit already points at a different node.
//	  - ErrDanglingExit     exit points at a node that was never added.
//	  - ErrNodeNotFound     start (or a queried) node does not exist.
//	  - ErrEmptyGraph       Build on a builder with no nodes.
//
// Complexity (V = nodes)
//
//   - Build:            O(V log V) for the ID sort + O(V) exit resolution.
//   - Neighbor, Exits:  O(1) after an O(1) map lookup.
//   - Memory:           O(V).
package core
