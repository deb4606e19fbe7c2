package frontier_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/coverwalk/frontier"
)

// QueueSuite exercises the work queue's FIFO and exhaustion semantics.
type QueueSuite struct {
	suite.Suite
	q *frontier.Queue
}

func (s *QueueSuite) SetupTest() {
	q, err := frontier.NewQueue(frontier.WithIdleWait(10 * time.Millisecond))
	require.NoError(s.T(), err)
	s.q = q
}

// TestFIFO verifies insertion order is preserved.
func (s *QueueSuite) TestFIFO() {
	g := chain(s.T(), 4)
	root := frontier.Seed(g)
	for i := 1; i < 4; i++ {
		s.q.Push(root.Extend(i))
	}
	require.Equal(s.T(), 3, s.q.Len())
	for i := 1; i < 4; i++ {
		st, status := s.q.Pop(context.Background())
		require.Equal(s.T(), frontier.Popped, status)
		require.Equal(s.T(), i, st.Current())
	}
	require.Equal(s.T(), 3, s.q.InFlight())
	for i := 0; i < 3; i++ {
		s.q.Done()
	}
	require.Equal(s.T(), 0, s.q.InFlight())
}

// TestDrainedWhenIdle checks an empty queue with nothing in flight.
func (s *QueueSuite) TestDrainedWhenIdle() {
	_, status := s.q.Pop(context.Background())
	require.Equal(s.T(), frontier.Drained, status)
}

// TestEmptyIsNotDrained checks that a timeout while work is in flight
// reports Empty rather than Drained.
func (s *QueueSuite) TestEmptyIsNotDrained() {
	s.q.Push(frontier.Seed(chain(s.T(), 1)))
	_, status := s.q.Pop(context.Background())
	require.Equal(s.T(), frontier.Popped, status)

	_, status = s.q.Pop(context.Background())
	require.Equal(s.T(), frontier.Empty, status)

	s.q.Done()
	_, status = s.q.Pop(context.Background())
	require.Equal(s.T(), frontier.Drained, status)
}

// TestPushWakesWaiter verifies a blocked Pop takes a sibling's push.
func (s *QueueSuite) TestPushWakesWaiter() {
	q, err := frontier.NewQueue(frontier.WithIdleWait(5 * time.Second))
	require.NoError(s.T(), err)
	g := chain(s.T(), 2)
	q.Push(frontier.Seed(g))
	_, status := q.Pop(context.Background())
	require.Equal(s.T(), frontier.Popped, status)

	got := make(chan frontier.PopStatus, 1)
	go func() {
		_, st := q.Pop(context.Background())
		got <- st
	}()
	time.Sleep(10 * time.Millisecond)
	q.Push(frontier.Seed(g).Extend(1))

	select {
	case st := <-got:
		require.Equal(s.T(), frontier.Popped, st)
	case <-time.After(time.Second):
		s.T().Fatal("Pop did not wake on Push")
	}
}

// TestDoneWakesWaiters verifies the last Done releases blocked Pops.
func (s *QueueSuite) TestDoneWakesWaiters() {
	q, err := frontier.NewQueue(frontier.WithIdleWait(5 * time.Second))
	require.NoError(s.T(), err)
	q.Push(frontier.Seed(chain(s.T(), 1)))
	_, status := q.Pop(context.Background())
	require.Equal(s.T(), frontier.Popped, status)

	const waiters = 4
	got := make(chan frontier.PopStatus, waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			_, st := q.Pop(context.Background())
			got <- st
		}()
	}
	time.Sleep(10 * time.Millisecond)
	q.Done()
	for i := 0; i < waiters; i++ {
		select {
		case st := <-got:
			require.Equal(s.T(), frontier.Drained, st)
		case <-time.After(time.Second):
			s.T().Fatal("waiter not released by Done")
		}
	}
}

// TestCancelled verifies Pop honors context cancellation.
func (s *QueueSuite) TestCancelled() {
	q, err := frontier.NewQueue(frontier.WithIdleWait(5 * time.Second))
	require.NoError(s.T(), err)
	q.Push(frontier.Seed(chain(s.T(), 1)))
	_, _ = q.Pop(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan frontier.PopStatus, 1)
	go func() {
		_, st := q.Pop(ctx)
		got <- st
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case st := <-got:
		require.Equal(s.T(), frontier.Cancelled, st)
	case <-time.After(time.Second):
		s.T().Fatal("Pop ignored cancellation")
	}
}

// TestDoneWithoutPop panics.
func (s *QueueSuite) TestDoneWithoutPop() {
	require.Panics(s.T(), func() { s.q.Done() })
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

func TestNewQueue_BadIdleWait(t *testing.T) {
	_, err := frontier.NewQueue(frontier.WithIdleWait(0))
	require.ErrorIs(t, err, frontier.ErrOptionViolation)
}

func TestPopStatus_String(t *testing.T) {
	require.Equal(t, "popped", frontier.Popped.String())
	require.Equal(t, "empty", frontier.Empty.String())
	require.Equal(t, "drained", frontier.Drained.String())
	require.Equal(t, "cancelled", frontier.Cancelled.String())
	require.Equal(t, "PopStatus(9)", frontier.PopStatus(9).String())
}

// TestQueue_ConcurrentTreeExpansion expands a binary tree of fixed depth
// across several workers. Every worker must see Drained exactly once
// after all nodes are processed, and no node may be lost.
func TestQueue_ConcurrentTreeExpansion(t *testing.T) {
	const (
		workers = 8
		depth   = 10
	)
	q, err := frontier.NewQueue(frontier.WithIdleWait(time.Millisecond))
	require.NoError(t, err)
	g := chain(t, depth+1)
	q.Push(frontier.Seed(g))

	var processed atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				st, status := q.Pop(context.Background())
				switch status {
				case frontier.Drained:
					return
				case frontier.Empty:
					continue
				}
				processed.Add(1)
				if st.Len() <= depth {
					q.Push(st.Extend(st.Len()))
					q.Push(st.Extend(st.Len()))
				}
				q.Done()
			}
		}()
	}
	wg.Wait()

	// 1 + 2 + 4 + ... + 2^depth states.
	require.Equal(t, int64(1<<(depth+1)-1), processed.Load())
	require.Equal(t, 0, q.Len())
	require.Equal(t, 0, q.InFlight())
}
