package coverage

import "fmt"

// Phase is a state of the Solve orchestrator.
//
//	Running ──► Draining ──► DoneSuccess
//	   │            │
//	   └────────────┴──────► DoneFailure
type Phase int

const (
	// Running: workers are exploring and candidates are being collected.
	Running Phase = iota
	// Draining: no more candidates are accepted; waiting for workers to exit.
	Draining
	// DoneSuccess: a route was chosen.
	DoneSuccess
	// DoneFailure: no route, cancellation or a worker failure.
	DoneFailure
)

// String returns a lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Draining:
		return "draining"
	case DoneSuccess:
		return "done_success"
	case DoneFailure:
		return "done_failure"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Terminal reports whether p is DoneSuccess or DoneFailure.
func (p Phase) Terminal() bool {
	return p == DoneSuccess || p == DoneFailure
}

// canAdvance reports whether the orchestrator may move from p to next.
func (p Phase) canAdvance(next Phase) bool {
	switch p {
	case Running:
		return next == Draining || next == DoneFailure
	case Draining:
		return next.Terminal()
	}
	return false
}
