package reaction

import (
	"context"
	"iter"
	"time"
)

// Factory binds the type parameters once so reactors can build reactions
// without repeating them:
//
//	var r = reaction.For[Action, Mutation, Event]()
//	return r.Just(r.Mutation(Inc{}), r.Event(Bumped{})), nil
type Factory[A, M, E any] struct{}

// For returns a Factory for the given action, mutation and event types.
func For[A, M, E any]() Factory[A, M, E] {
	return Factory[A, M, E]{}
}

func (Factory[A, M, E]) Action(a A) Reaction[A, M, E] {
	return Action[A, M, E](a)
}

func (Factory[A, M, E]) Mutation(m M) Reaction[A, M, E] {
	return Mutation[A, M, E](m)
}

func (Factory[A, M, E]) Event(e E) Reaction[A, M, E] {
	return Event[A, M, E](e)
}

func (Factory[A, M, E]) Error(err error) Reaction[A, M, E] {
	return Error[A, M, E](err)
}

func (Factory[A, M, E]) Just(rs ...Reaction[A, M, E]) iter.Seq[Reaction[A, M, E]] {
	return Just(rs...)
}

func (Factory[A, M, E]) Empty() iter.Seq[Reaction[A, M, E]] {
	return Empty[A, M, E]()
}

func (Factory[A, M, E]) Fail(err error) iter.Seq[Reaction[A, M, E]] {
	return Fail[A, M, E](err)
}

func (Factory[A, M, E]) Concat(seqs ...iter.Seq[Reaction[A, M, E]]) iter.Seq[Reaction[A, M, E]] {
	return Concat(seqs...)
}

func (Factory[A, M, E]) After(ctx context.Context, d time.Duration, seq iter.Seq[Reaction[A, M, E]]) iter.Seq[Reaction[A, M, E]] {
	return After(ctx, d, seq)
}
