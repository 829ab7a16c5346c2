package observable

import "sync"

// Selection is a derived view over one part of a source value.
// It only publishes when the selected part changes.
type Selection[T comparable] struct {
	cell *Cell[T]
	sub  Subscription
	mu   sync.Mutex
	last T
}

// Select derives a view of pick(value) from src.
// Call Close to detach the selection from its source.
func Select[S any, T comparable](src View[S], pick func(S) T) *Selection[T] {
	initial := pick(src.Get())
	sel := &Selection[T]{
		cell: NewCell(initial),
		last: initial,
	}

	sel.sub = src.Subscribe(func(v S) {
		next := pick(v)

		sel.mu.Lock()
		if next == sel.last {
			sel.mu.Unlock()
			return
		}
		sel.last = next
		sel.mu.Unlock()

		sel.cell.Set(next)
	})

	return sel
}

func (s *Selection[T]) Get() T {
	return s.cell.Get()
}

func (s *Selection[T]) Subscribe(fn func(T)) Subscription {
	return s.cell.Subscribe(fn)
}

// Close stops following the source. The last selected value stays readable.
func (s *Selection[T]) Close() {
	s.sub.Unsubscribe()
}
