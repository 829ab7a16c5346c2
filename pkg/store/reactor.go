package store

import (
	"context"
	"iter"

	"github.com/dmitrymomot/storekit/pkg/reaction"
)

// Reactor supplies the application logic of a store.
type Reactor[A, M, E, S any] interface {
	// React maps an action and the current state to a lazily produced
	// sequence of reactions. ctx is cancelled when the store is closed;
	// long-lived sequences must honour it.
	React(ctx context.Context, action A, state S) (iter.Seq[reaction.Reaction[A, M, E]], error)

	// Reduce applies a mutation to state. It must be pure and must not fail.
	Reduce(mutation M, state S) S
}

// ActionTransformer is implemented by reactors that rewrite the whole action stream.
type ActionTransformer[A any] interface {
	TransformActions(ctx context.Context, actions <-chan A) <-chan A
}

// MutationTransformer is implemented by reactors that rewrite the whole mutation
// stream, e.g. to merge in mutations derived from another store.
type MutationTransformer[M any] interface {
	TransformMutations(ctx context.Context, mutations <-chan M) <-chan M
}

// EventTransformer is implemented by reactors that rewrite the whole event stream.
type EventTransformer[E any] interface {
	TransformEvents(ctx context.Context, events <-chan E) <-chan E
}

// ErrorTransformer is implemented by reactors that rewrite the whole error stream.
type ErrorTransformer interface {
	TransformErrors(ctx context.Context, errs <-chan error) <-chan error
}

// Funcs is a Reactor assembled from plain functions.
// Nil React yields nothing, nil Reduce keeps the state and nil transforms are identity.
type Funcs[A, M, E, S any] struct {
	ReactFn     func(ctx context.Context, action A, state S) (iter.Seq[reaction.Reaction[A, M, E]], error)
	ReduceFn    func(mutation M, state S) S
	ActionsFn   func(ctx context.Context, actions <-chan A) <-chan A
	MutationsFn func(ctx context.Context, mutations <-chan M) <-chan M
	EventsFn    func(ctx context.Context, events <-chan E) <-chan E
	ErrorsFn    func(ctx context.Context, errs <-chan error) <-chan error
}

func (f Funcs[A, M, E, S]) React(ctx context.Context, action A, state S) (iter.Seq[reaction.Reaction[A, M, E]], error) {
	if f.ReactFn == nil {
		return reaction.Empty[A, M, E](), nil
	}
	return f.ReactFn(ctx, action, state)
}

func (f Funcs[A, M, E, S]) Reduce(mutation M, state S) S {
	if f.ReduceFn == nil {
		return state
	}
	return f.ReduceFn(mutation, state)
}

func (f Funcs[A, M, E, S]) TransformActions(ctx context.Context, actions <-chan A) <-chan A {
	if f.ActionsFn == nil {
		return actions
	}
	return f.ActionsFn(ctx, actions)
}

func (f Funcs[A, M, E, S]) TransformMutations(ctx context.Context, mutations <-chan M) <-chan M {
	if f.MutationsFn == nil {
		return mutations
	}
	return f.MutationsFn(ctx, mutations)
}

func (f Funcs[A, M, E, S]) TransformEvents(ctx context.Context, events <-chan E) <-chan E {
	if f.EventsFn == nil {
		return events
	}
	return f.EventsFn(ctx, events)
}

func (f Funcs[A, M, E, S]) TransformErrors(ctx context.Context, errs <-chan error) <-chan error {
	if f.ErrorsFn == nil {
		return errs
	}
	return f.ErrorsFn(ctx, errs)
}
