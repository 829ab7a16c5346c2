package observable

import "sync"

// Subject multicasts published values to current subscribers only.
// Nothing is replayed: a subscriber never sees values published before it subscribed.
type Subject[T any] struct {
	mu   sync.RWMutex
	subs registry[T]
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Publish delivers v synchronously to every current subscriber in subscription order.
func (s *Subject[T]) Publish(v T) {
	s.mu.RLock()
	subs := s.subs.snapshot()
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.deliver(v, 0)
	}
}

// Subscribe registers fn for future values.
func (s *Subject[T]) Subscribe(fn func(T)) Subscription {
	sub := newSubscriber(fn)

	s.mu.Lock()
	s.subs.add(sub)
	s.mu.Unlock()

	return &subscription[T]{sub: sub, detach: s.detach}
}

// Len reports the number of active subscribers.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs.subs)
}

func (s *Subject[T]) detach(sub *subscriber[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs.remove(sub)
}
