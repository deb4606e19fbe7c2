// Package frontier holds the two pieces of shared plumbing used by the
// coverage search: State, an immutable snapshot of one search branch, and
// Queue, the concurrent work queue that branches are forked into.
//
// State
//
//	A State is (current node, path so far, visited set). The visited set
//	is derived from the path: it is exactly the set of node indices that
//	appear in it. It is cached as a bitset built from the parent's bitset
//	plus the appended nodes, never supplied independently. Extend returns
//	a new State owning fresh copies of both; the receiver is untouched, so
//	States can be handed between goroutines by value.
//
// Queue
//
//	Queue is a mutex-guarded FIFO with in-flight accounting. Every Pop
//	that returns a State marks one unit of work as in flight until the
//	caller calls Done. Pop reports Drained only when, under the same lock,
//	the queue is empty and nothing is in flight: at that point no goroutine
//	can push again, so exhaustion is certain. A Pop that merely times out
//	while siblings are still working returns Empty, which callers must
//	treat as "try again", never as termination.
package frontier
