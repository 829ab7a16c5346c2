package observable

import (
	"sync"
	"sync/atomic"
)

// Subscription detaches a subscriber from its source.
type Subscription interface {
	// Unsubscribe stops delivery. It is idempotent and safe to call
	// from inside the subscriber's own callback.
	Unsubscribe()
}

// Observable delivers values of type T to subscribers.
// Implementations must be safe for concurrent use.
type Observable[T any] interface {
	Subscribe(fn func(T)) Subscription
}

// View is a read-only observable that always holds a current value.
type View[T any] interface {
	Observable[T]
	Get() T
}

// subscriber is a single registered callback.
// Deliveries are serialized: a value arriving while fn runs, including one
// set from inside fn, is queued and handed over once fn returns.
type subscriber[T any] struct {
	fn      func(T)
	active  atomic.Bool
	mu      sync.Mutex
	busy    bool
	queue   []delivery[T]
	version uint64
}

type delivery[T any] struct {
	value   T
	version uint64
}

func newSubscriber[T any](fn func(T)) *subscriber[T] {
	s := &subscriber[T]{fn: fn}
	s.active.Store(true)
	return s
}

// deliver calls fn unless the subscriber is gone or already saw a newer value.
// A zero version disables the staleness check.
func (s *subscriber[T]) deliver(v T, version uint64) {
	if !s.active.Load() {
		return
	}

	s.mu.Lock()
	s.queue = append(s.queue, delivery[T]{value: v, version: version})
	if s.busy {
		s.mu.Unlock()
		return
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.busy = false
			s.queue = nil
			s.mu.Unlock()
			panic(r)
		}
	}()

	for {
		s.mu.Lock()
		d, ok := s.next()
		if !ok {
			s.busy = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		if s.active.Load() {
			s.fn(d.value)
		}
	}
}

// next pops the oldest queued value that is not stale. Callers hold mu.
func (s *subscriber[T]) next() (delivery[T], bool) {
	for len(s.queue) > 0 {
		d := s.queue[0]
		s.queue[0] = delivery[T]{}
		s.queue = s.queue[1:]

		if d.version != 0 {
			if d.version <= s.version {
				continue
			}
			s.version = d.version
		}
		return d, true
	}
	return delivery[T]{}, false
}

// registry keeps subscribers in subscription order.
type registry[T any] struct {
	subs []*subscriber[T]
}

func (r *registry[T]) add(s *subscriber[T]) {
	r.subs = append(r.subs, s)
}

func (r *registry[T]) remove(s *subscriber[T]) {
	for i, sub := range r.subs {
		if sub == s {
			// Copy-on-write: snapshots taken by in-flight notifications stay intact.
			next := make([]*subscriber[T], 0, len(r.subs)-1)
			next = append(next, r.subs[:i]...)
			r.subs = append(next, r.subs[i+1:]...)
			return
		}
	}
}

func (r *registry[T]) snapshot() []*subscriber[T] {
	return r.subs[:len(r.subs):len(r.subs)]
}

type subscription[T any] struct {
	once   sync.Once
	sub    *subscriber[T]
	detach func(*subscriber[T])
}

func (s *subscription[T]) Unsubscribe() {
	s.once.Do(func() {
		s.sub.active.Store(false)
		s.detach(s.sub)
	})
}

// SubscriptionFunc adapts a plain function to the Subscription interface.
type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}
