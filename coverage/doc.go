// Package coverage searches a room graph for a route that visits every
// room at least once.
//
// Solve runs a fixed pool of workers over a shared frontier.Queue. Each
// worker pops a branch, forks it once per unvisited neighbor and, when a
// branch stalls, asks deadend.Resolve for the shortest walk back to
// unvisited territory. Branches that visit every room are emitted as
// candidates on a result channel owned by the orchestrator.
//
// Two modes are supported:
//
//   - Exhaustive (WithMaxLength(0), the default): every candidate is
//     collected and the shortest wins, ties going to the first one
//     received. Search ends when the queue is drained and no worker holds
//     a branch. No candidate ⇒ ErrUnreachableCoverage.
//   - Bounded (WithMaxLength(L), L > 0): branches longer than L node IDs
//     are discarded, the first candidate wins and the remaining workers
//     are cancelled. The result is not necessarily the shortest.
//     No candidate ⇒ ErrLimitExceeded.
//
// The RandomizedRestart strategy replaces the forking search with
// repeated seeded random walks; see Strategy.
//
// The orchestrator moves through Running, Draining and one of
// DoneSuccess / DoneFailure; OnPhase observes every transition.
//
// Solve never prints. Diagnostics go to the *slog.Logger set with
// WithLogger (discarded by default), to the package-level Prometheus
// collectors in metrics.go and to an OpenTelemetry span named
// "coverage.Solve".
package coverage
