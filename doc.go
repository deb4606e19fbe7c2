// Package coverwalk finds routes through room maps that visit every room
// at least once, using a pool of concurrent search workers.
//
// 🚀 What is coverwalk?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Room graphs: one-way exits in four directions, immutable once built
//		• Fixtures: corridors, rings, grids, lollipops, islands, random mazes
//		• Parallel search: forking workers over a shared work queue
//		• Dead-end recovery: shortest walk back to unvisited territory
//		• Directions: path ⇄ moves, with replay verification
//
// ✨ Guarantees
//
//   - Exhaustive mode returns the shortest full-coverage route it can
//     find, or ErrUnreachableCoverage once the search space is drained.
//   - Bounded mode never returns a route longer than its limit.
//   - Termination is detected by in-flight accounting, never by timeouts.
//   - The library never prints; logs go to a caller-supplied *slog.Logger.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        Direction, Builder and the immutable Graph
//	builder/     deterministic graph fixtures
//	frontier/    search branch values and the work queue
//	deadend/     local BFS that unsticks stalled branches
//	coverage/    worker pool, strategies and the Solve orchestrator
//	directions/  move reconstruction, replay and formatting
//	cmd/coverwalk  cobra CLI over YAML room documents
//
// Quick ASCII example (lollipop: three-room loop, two-room stick):
//
//	  4
//	  │
//	  3
//	  │
//	  0───1───2      2 ─n→ 0 and 0 ─s→ 2 close the loop
//
//	coverwalk solve --fixture lollipop:2,3 --verify
//	e e n n n
package coverwalk
