package streams

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/storekit/pkg/observable"
)

// Merge forwards values from all inputs to one channel.
// The output closes when every input is closed or ctx is cancelled.
func Merge[T any](ctx context.Context, ins ...<-chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	for _, in := range ins {
		if in == nil {
			continue
		}
		wg.Add(1)
		go func(in <-chan T) {
			defer wg.Done()
			for {
				v, ok := recv(ctx, in)
				if !ok || !send(ctx, out, v) {
					return
				}
			}
		}(in)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Map applies fn to every value.
func Map[T, U any](ctx context.Context, in <-chan T, fn func(T) U) <-chan U {
	out := make(chan U)
	go func() {
		defer close(out)
		for {
			v, ok := recv(ctx, in)
			if !ok || !send(ctx, out, fn(v)) {
				return
			}
		}
	}()
	return out
}

// Filter forwards values for which keep returns true.
func Filter[T any](ctx context.Context, in <-chan T, keep func(T) bool) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			v, ok := recv(ctx, in)
			if !ok {
				return
			}
			if keep(v) && !send(ctx, out, v) {
				return
			}
		}
	}()
	return out
}

// Debounce emits the latest value once no new value arrived for d.
// A pending value is flushed when the input closes.
func Debounce[T any](ctx context.Context, in <-chan T, d time.Duration) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)

		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		var (
			pending T
			has     bool
		)
		emit := func() bool {
			if !has {
				return true
			}
			has = false
			select {
			case out <- pending:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case v, ok := <-in:
				if !ok {
					emit()
					return
				}
				pending, has = v, true
				if timer == nil {
					timer = time.NewTimer(d)
					fire = timer.C
				} else {
					timer.Reset(d)
				}
			case <-fire:
				if !emit() {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Throttle forwards values no faster than limiter allows.
// Values wait for a token rather than being dropped.
func Throttle[T any](ctx context.Context, in <-chan T, limiter *rate.Limiter) <-chan T {
	if limiter == nil {
		return in
	}
	out := make(chan T)
	go func() {
		defer close(out)
		for {
			v, ok := recv(ctx, in)
			if !ok {
				return
			}
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			if !send(ctx, out, v) {
				return
			}
		}
	}()
	return out
}

// FromObservable turns src into a channel. Values are buffered without bound
// so the publisher is never blocked by a slow reader. The subscription ends
// and the channel closes when ctx is cancelled.
func FromObservable[T any](ctx context.Context, src observable.Observable[T]) <-chan T {
	q := NewQueue[T](ctx)
	sub := src.Subscribe(func(v T) {
		q.Push(v)
	})
	go func() {
		<-ctx.Done()
		sub.Unsubscribe()
	}()
	return q.Out()
}

// recv reads one value, giving up when ctx is cancelled.
func recv[T any](ctx context.Context, in <-chan T) (T, bool) {
	select {
	case v, ok := <-in:
		return v, ok
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// send writes one value, giving up when ctx is cancelled.
func send[T any](ctx context.Context, out chan T, v T) bool {
	select {
	case out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
