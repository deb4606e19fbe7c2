package frontier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrOptionViolation is returned by NewQueue for an invalid QueueOption.
var ErrOptionViolation = errors.New("frontier: invalid option supplied")

// DefaultIdleWait is how long Pop waits on an empty queue before
// reporting Empty.
const DefaultIdleWait = 50 * time.Millisecond

// PopStatus is the outcome of Queue.Pop.
type PopStatus int

const (
	// Popped means a State was returned and is now in flight.
	Popped PopStatus = iota
	// Empty means the idle wait elapsed while other work was in flight.
	Empty
	// Drained means the queue is empty and nothing is in flight.
	Drained
	// Cancelled means the context passed to Pop is done.
	Cancelled
)

// String returns a lower-case name for the status.
func (p PopStatus) String() string {
	switch p {
	case Popped:
		return "popped"
	case Empty:
		return "empty"
	case Drained:
		return "drained"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("PopStatus(%d)", int(p))
}

// QueueOption configures a Queue.
type QueueOption func(*queueOptions)

type queueOptions struct {
	idleWait time.Duration
	err      error
}

// WithIdleWait sets the bounded wait of Pop. d must be positive.
func WithIdleWait(d time.Duration) QueueOption {
	return func(o *queueOptions) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: idle wait must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.idleWait = d
	}
}

// Queue is a multi-producer multi-consumer FIFO of States with
// in-flight accounting. All methods are safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []State
	head     int
	inFlight int
	idleWait time.Duration
}

// NewQueue returns an empty Queue.
func NewQueue(opts ...QueueOption) (*Queue, error) {
	o := queueOptions{idleWait: DefaultIdleWait}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	q := &Queue{idleWait: o.idleWait}
	q.cond = sync.NewCond(&q.mu)
	return q, nil
}

// Push appends s. It never blocks on consumers.
func (q *Queue) Push(s State) {
	q.mu.Lock()
	q.items = append(q.items, s)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop removes the oldest State. It blocks for at most the idle wait when
// the queue is empty but work is still in flight, and returns immediately
// with Drained once the queue is empty and nothing is in flight.
//
// A Popped result must be paired with exactly one call to Done after the
// caller has pushed every State derived from it.
func (q *Queue) Pop(ctx context.Context) (State, PopStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()

	expired := false
	timer := time.AfterFunc(q.idleWait, func() {
		q.mu.Lock()
		expired = true
		q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer timer.Stop()
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	for {
		if ctx.Err() != nil {
			return State{}, Cancelled
		}
		if q.head < len(q.items) {
			s := q.items[q.head]
			q.items[q.head] = State{}
			q.head++
			q.compact()
			q.inFlight++
			return s, Popped
		}
		if q.inFlight == 0 {
			return State{}, Drained
		}
		if expired {
			return State{}, Empty
		}
		q.cond.Wait()
	}
}

// compact drops the consumed prefix once it dominates the backing array.
// Caller must hold q.mu.
func (q *Queue) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head >= 1024 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
}

// Done marks one popped State as finished. When that leaves the queue
// empty with nothing in flight, every blocked Pop is woken to observe
// Drained.
func (q *Queue) Done() {
	q.mu.Lock()
	if q.inFlight == 0 {
		q.mu.Unlock()
		panic("frontier: Done called without a matching Pop")
	}
	q.inFlight--
	drained := q.inFlight == 0 && q.head == len(q.items)
	q.mu.Unlock()
	if drained {
		q.cond.Broadcast()
	}
}

// Len returns the number of queued States.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// InFlight returns the number of popped States not yet marked Done.
func (q *Queue) InFlight() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.inFlight
}
