package reaction

import (
	"context"
	"iter"
	"time"
)

// Just yields rs in order.
func Just[A, M, E any](rs ...Reaction[A, M, E]) iter.Seq[Reaction[A, M, E]] {
	return func(yield func(Reaction[A, M, E]) bool) {
		for _, r := range rs {
			if !yield(r) {
				return
			}
		}
	}
}

// Empty yields nothing.
func Empty[A, M, E any]() iter.Seq[Reaction[A, M, E]] {
	return func(func(Reaction[A, M, E]) bool) {}
}

// Fail yields a single error reaction.
func Fail[A, M, E any](err error) iter.Seq[Reaction[A, M, E]] {
	return Just(Error[A, M, E](err))
}

// Concat yields every sequence in turn. Nil sequences are skipped.
func Concat[A, M, E any](seqs ...iter.Seq[Reaction[A, M, E]]) iter.Seq[Reaction[A, M, E]] {
	return func(yield func(Reaction[A, M, E]) bool) {
		for _, seq := range seqs {
			if seq == nil {
				continue
			}
			for r := range seq {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// After waits for d and then yields seq. Nothing is yielded if ctx is
// cancelled first, so a store that is closed during the wait drops the
// delayed reactions. The wait releases the sequence's place in the
// delivery order.
func After[A, M, E any](ctx context.Context, d time.Duration, seq iter.Seq[Reaction[A, M, E]]) iter.Seq[Reaction[A, M, E]] {
	return func(yield func(Reaction[A, M, E]) bool) {
		Release(ctx)

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if seq == nil {
			return
		}
		for r := range seq {
			if ctx.Err() != nil || !yield(r) {
				return
			}
		}
	}
}

// FromFunc runs fn when the sequence is consumed and yields its result as a
// mutation, or as an error reaction if fn fails. Like After, it releases the
// sequence's place in the delivery order before calling fn.
func FromFunc[A, M, E any](ctx context.Context, fn func(context.Context) (M, error)) iter.Seq[Reaction[A, M, E]] {
	return func(yield func(Reaction[A, M, E]) bool) {
		Release(ctx)

		m, err := fn(ctx)
		if err != nil {
			yield(Error[A, M, E](err))
			return
		}
		yield(Mutation[A, M, E](m))
	}
}

// Collect drains seq into a slice. Useful in tests of reactors.
func Collect[A, M, E any](seq iter.Seq[Reaction[A, M, E]]) []Reaction[A, M, E] {
	var out []Reaction[A, M, E]
	if seq == nil {
		return out
	}
	for r := range seq {
		out = append(out, r)
	}
	return out
}
