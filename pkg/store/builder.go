package store

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/storekit/pkg/middleware"
)

// Builder collects per-leg middleware before the store starts.
// Middleware order is the declaration order and is frozen by Build.
type Builder[A, M, E, S any] struct {
	initial  S
	reactor  Reactor[A, M, E, S]
	action   []middleware.Middleware[S, A]
	mutation []middleware.Middleware[S, M]
	event    []middleware.Middleware[S, E]
	errs     []middleware.Middleware[S, error]
	postware []middleware.Postware[S]
	opts     []Option
}

// NewBuilder starts building a store with the given initial state and reactor.
func NewBuilder[A, M, E, S any](initial S, reactor Reactor[A, M, E, S]) *Builder[A, M, E, S] {
	return &Builder[A, M, E, S]{
		initial: initial,
		reactor: reactor,
	}
}

// WithActionMiddleware appends middleware run on every action before React.
func (b *Builder[A, M, E, S]) WithActionMiddleware(mws ...middleware.Middleware[S, A]) *Builder[A, M, E, S] {
	b.action = append(b.action, mws...)
	return b
}

// WithMutationMiddleware appends middleware run on every mutation before Reduce.
func (b *Builder[A, M, E, S]) WithMutationMiddleware(mws ...middleware.Middleware[S, M]) *Builder[A, M, E, S] {
	b.mutation = append(b.mutation, mws...)
	return b
}

// WithEventMiddleware appends middleware run on every event before it is published.
func (b *Builder[A, M, E, S]) WithEventMiddleware(mws ...middleware.Middleware[S, E]) *Builder[A, M, E, S] {
	b.event = append(b.event, mws...)
	return b
}

// WithErrorMiddleware appends middleware run on every error before it is published.
func (b *Builder[A, M, E, S]) WithErrorMiddleware(mws ...middleware.Middleware[S, error]) *Builder[A, M, E, S] {
	b.errs = append(b.errs, mws...)
	return b
}

// WithPostware appends postware run on every reduced state before it is published.
func (b *Builder[A, M, E, S]) WithPostware(pws ...middleware.Postware[S]) *Builder[A, M, E, S] {
	b.postware = append(b.postware, pws...)
	return b
}

// WithOptions appends ambient options.
func (b *Builder[A, M, E, S]) WithOptions(opts ...Option) *Builder[A, M, E, S] {
	b.opts = append(b.opts, opts...)
	return b
}

// Build creates and starts the store.
func (b *Builder[A, M, E, S]) Build() (*Store[A, M, E, S], error) {
	if b.reactor == nil {
		return nil, ErrNilReactor
	}

	o := defaultOptions()
	for _, opt := range b.opts {
		opt(o)
	}

	s := newStore(b.initial, b.reactor, o)
	s.wire(
		slices.Clone(b.action),
		slices.Clone(b.mutation),
		slices.Clone(b.event),
		slices.Clone(b.errs),
		slices.Clone(b.postware),
	)
	s.start()

	return s, nil
}

// MustBuild works like Build but panics on error.
func (b *Builder[A, M, E, S]) MustBuild() *Store[A, M, E, S] {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build store: %v", err))
	}
	return s
}

// New creates and starts a store without middleware.
func New[A, M, E, S any](initial S, reactor Reactor[A, M, E, S], opts ...Option) (*Store[A, M, E, S], error) {
	return NewBuilder(initial, reactor).WithOptions(opts...).Build()
}

// MustNew works like New but panics on error.
func MustNew[A, M, E, S any](initial S, reactor Reactor[A, M, E, S], opts ...Option) *Store[A, M, E, S] {
	return NewBuilder(initial, reactor).WithOptions(opts...).MustBuild()
}
