package streams

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO with a channel output.
// Push never blocks, which makes it safe to feed from a goroutine that is
// itself downstream of the consumer. A single pump goroutine moves items
// to Out in push order.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{}
	out    chan T
	done   chan struct{}
}

// NewQueue creates a queue and starts its pump. The pump stops and closes Out
// when ctx is cancelled (pending items are dropped) or after Close once all
// pending items have been delivered.
func NewQueue[T any](ctx context.Context) *Queue[T] {
	q := &Queue[T]{
		signal: make(chan struct{}, 1),
		out:    make(chan T),
		done:   make(chan struct{}),
	}
	go q.run(ctx)
	return q
}

// Push appends v. It returns false if the queue no longer accepts values.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.notify()
	return true
}

// Out returns the channel delivering queued values.
func (q *Queue[T]) Out() <-chan T {
	return q.out
}

// Len reports the number of values waiting to be delivered.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops accepting values. Already queued values are still delivered.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.notify()
}

// Done is closed once the pump has stopped and Out is closed.
func (q *Queue[T]) Done() <-chan struct{} {
	return q.done
}

func (q *Queue[T]) notify() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *Queue[T]) run(ctx context.Context) {
	defer close(q.done)
	defer close(q.out)

	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			closed := q.closed
			q.mu.Unlock()
			if closed {
				return
			}
			select {
			case <-q.signal:
				continue
			case <-ctx.Done():
				q.reject()
				return
			}
		}

		v := q.items[0]
		var zero T
		q.items[0] = zero
		q.items = q.items[1:]
		q.mu.Unlock()

		select {
		case q.out <- v:
		case <-ctx.Done():
			q.reject()
			return
		}
	}
}

// reject drops pending items and refuses further pushes.
func (q *Queue[T]) reject() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
}
