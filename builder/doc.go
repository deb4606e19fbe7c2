// Package builder provides deterministic room-graph fixtures for the
// coverage search: corridors, rings, grids, lollipops, disconnected
// islands and seeded random mazes.
//
// The package offers the following key components:
//
//   - BuildMap(opts, cons...): the single orchestrator. It creates a
//     core.Builder, resolves options, runs constructors in order and
//     builds the immutable core.Graph.
//   - Constructors (impl_*.go):
//     – Line(n, dir):          corridor of n rooms along dir, two-way.
//     – Ring(n, oneWay):       cycle of n rooms, optionally one-way.
//     – Grid(rows, cols):      orthogonal two-way grid, IDs "r,c".
//     – Lollipop(tail, loop):  two-way cycle with a corridor hanging off.
//     – Islands(sizes...):     disconnected corridors, IDs "i<k>-<j>".
//     – Maze(rows, cols):      random spanning tree of a grid (needs WithSeed).
//   - Options:
//     – WithIDScheme(fn):      index → ID mapping (DefaultIDFn, SymbolIDFn, …).
//     – WithStart(id):         start node (default: first node added).
//     – WithSeed(seed):        RNG for stochastic constructors.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Every reverse exit is added explicitly (core never infers one).
//   - Constructors never panic on bad sizes; they return ErrTooFewVertices.
package builder
