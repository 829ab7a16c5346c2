package observable

import "sync"

// Cell holds a single current value and multicasts every update.
// New subscribers receive the current value immediately.
// All methods are safe for concurrent use.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64
	subs    registry[T]
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, version: 1}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the current value and notifies subscribers in subscription order.
// Notification happens on the calling goroutine, outside the cell lock. Set may
// be called from a subscriber of the same cell; that subscriber then receives
// the new value after its current callback returns.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.version++
	c.value = v
	version := c.version
	subs := c.subs.snapshot()
	c.mu.Unlock()

	for _, s := range subs {
		s.deliver(v, version)
	}
}

// Subscribe registers fn, replays the current value to it and delivers
// every later value until the subscription is cancelled.
func (c *Cell[T]) Subscribe(fn func(T)) Subscription {
	s := newSubscriber(fn)

	c.mu.Lock()
	c.subs.add(s)
	v, version := c.value, c.version
	c.mu.Unlock()

	s.deliver(v, version)

	return &subscription[T]{sub: s, detach: c.detach}
}

// View returns a read-only view of the cell.
func (c *Cell[T]) View() View[T] {
	return readOnly[T]{cell: c}
}

// Len reports the number of active subscribers.
func (c *Cell[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs.subs)
}

func (c *Cell[T]) detach(s *subscriber[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs.remove(s)
}

type readOnly[T any] struct {
	cell *Cell[T]
}

func (r readOnly[T]) Get() T {
	return r.cell.Get()
}

func (r readOnly[T]) Subscribe(fn func(T)) Subscription {
	return r.cell.Subscribe(fn)
}
