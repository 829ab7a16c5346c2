package store

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/middleware"
	"github.com/dmitrymomot/storekit/pkg/reaction"
	"github.com/dmitrymomot/storekit/pkg/streams"
)

// wire builds the per-leg dispatch chains. Chains are fixed from here on.
func (s *Store[A, M, E, S]) wire(
	action []middleware.Middleware[S, A],
	mutation []middleware.Middleware[S, M],
	event []middleware.Middleware[S, E],
	errs []middleware.Middleware[S, error],
	postware []middleware.Postware[S],
) {
	state := middleware.StateFunc[S](s.State)

	s.publish = middleware.ChainPostware(state, s.setState, postware...)
	s.dispatchAction = middleware.Chain(state, s.react, action...)
	s.dispatchMutation = middleware.Chain(state, s.reduce, mutation...)
	s.dispatchEvent = middleware.Chain(state, s.emitEvent, event...)
	s.dispatchError = middleware.Chain(state, s.emitError, errs...)
}

// start launches one goroutine per leg and a watcher closing Done.
func (s *Store[A, M, E, S]) start() {
	actions := s.transformActions(s.intake.Out())
	if s.limiter != nil {
		actions = streams.Throttle(s.ctx, actions, s.limiter)
	}
	mutations := s.transformMutations(s.mutations.Out())
	events := s.transformEvents(s.eventQ.Out())
	errs := s.transformErrors(s.errorQ.Out())

	s.legs.Go(func() error {
		consume(s.ctx, actions, s.dispatchAction)
		return nil
	})
	s.legs.Go(func() error {
		consume(s.ctx, mutations, s.dispatchMutation)
		return nil
	})
	s.legs.Go(func() error {
		consume(s.ctx, events, s.dispatchEvent)
		return nil
	})
	s.legs.Go(func() error {
		consume(s.ctx, errs, s.dispatchError)
		return nil
	})

	go func() {
		<-s.ctx.Done()
		_ = s.legs.Wait()
		// The action leg is the only caller of reactions.Go, so it is safe to wait now.
		_ = s.reactions.Wait()
		s.log.InfoContext(s.ctx, "store stopped")
		close(s.done)
	}()

	s.log.InfoContext(s.ctx, "store started",
		logger.Group("config",
			slog.Float64("action_rate", s.cfg.ActionRate),
			slog.Int("action_burst", s.cfg.ActionBurst),
			slog.Int("max_reactions", s.cfg.MaxReactions),
			slog.Duration("drain_timeout", s.cfg.DrainTimeout),
		),
	)
}

// consume feeds every value from in to dispatch until in closes or ctx is done.
func consume[T any](ctx context.Context, in <-chan T, dispatch middleware.Dispatch[T]) {
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			dispatch(v)
		case <-ctx.Done():
			return
		}
	}
}

// react is the terminal of the action chain.
func (s *Store[A, M, E, S]) react(action A) A {
	s.actions.Publish(action)
	s.log.DebugContext(s.ctx, "reacting", logger.Leg("react"), logger.Action(action))

	// Each sequence waits for the previous one to finish or release before
	// routing, so reactions of consecutive actions keep their send order.
	prev := s.tail
	turn := make(chan struct{})
	release := sync.OnceFunc(func() { close(turn) })

	ctx := logger.WithAttrs(s.ctx,
		logger.Store(s.cfg.Name),
		logger.StoreID(s.id.String()),
		logger.Action(action),
	)
	ctx = reaction.WithRelease(ctx, release)

	seq, err := s.invoke(ctx, action, s.state.Get())
	if err != nil {
		s.fail(action, err)
		return action
	}
	if seq == nil {
		return action
	}

	s.tail = turn

	// Draining happens on its own goroutine, so a reaction of kind action is
	// only processed after this call frame and the current action loop turn end.
	s.reactions.Go(func() error {
		defer release()
		select {
		case <-prev:
		case <-ctx.Done():
			return nil
		}
		s.drain(ctx, action, seq)
		return nil
	})

	return action
}

func (s *Store[A, M, E, S]) invoke(ctx context.Context, action A, state S) (seq iter.Seq[reaction.Reaction[A, M, E]], err error) {
	defer func() {
		if r := recover(); r != nil {
			seq, err = nil, fmt.Errorf("%w: %v", ErrReactorPanic, r)
		}
	}()
	return s.reactor.React(ctx, action, state)
}

// drain routes every reaction of one React call in emission order.
func (s *Store[A, M, E, S]) drain(ctx context.Context, action A, seq iter.Seq[reaction.Reaction[A, M, E]]) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(action, fmt.Errorf("%w: %v", ErrReactorPanic, r))
		}
	}()

	for r := range seq {
		if ctx.Err() != nil {
			return
		}
		s.route(r)
	}
}

func (s *Store[A, M, E, S]) route(r reaction.Reaction[A, M, E]) {
	switch r.Kind() {
	case reaction.KindAction:
		a, _ := r.Action()
		s.intake.Push(a)
	case reaction.KindMutation:
		m, _ := r.Mutation()
		s.mutations.Push(m)
	case reaction.KindEvent:
		e, _ := r.Event()
		s.eventQ.Push(e)
	case reaction.KindError:
		s.errorQ.Push(r.Err())
	default:
		s.log.WarnContext(s.ctx, "dropping reaction without kind", logger.Kind(r.Kind().String()))
	}
}

func (s *Store[A, M, E, S]) fail(action A, err error) {
	s.log.WarnContext(s.ctx, "reactor failed", logger.Leg("react"), logger.Action(action), logger.Error(err))
	s.errorQ.Push(&ReactorError{Action: action, Err: err})
}

// reduce is the terminal of the mutation chain and the only writer of the fold.
func (s *Store[A, M, E, S]) reduce(mutation M) M {
	s.reduced = s.reactor.Reduce(mutation, s.reduced)
	s.publish(s.reduced)
	return mutation
}

// setState is the terminal of the postware chain.
func (s *Store[A, M, E, S]) setState(state S) S {
	if s.closed() {
		return state
	}
	s.state.Set(state)
	return state
}

func (s *Store[A, M, E, S]) emitEvent(event E) E {
	if !s.closed() {
		s.events.Publish(event)
	}
	return event
}

func (s *Store[A, M, E, S]) emitError(err error) error {
	if !s.closed() {
		s.errors.Publish(err)
	}
	return err
}

func (s *Store[A, M, E, S]) transformActions(in <-chan A) <-chan A {
	if t, ok := s.reactor.(ActionTransformer[A]); ok {
		if out := t.TransformActions(s.ctx, in); out != nil {
			return out
		}
	}
	return in
}

func (s *Store[A, M, E, S]) transformMutations(in <-chan M) <-chan M {
	if t, ok := s.reactor.(MutationTransformer[M]); ok {
		if out := t.TransformMutations(s.ctx, in); out != nil {
			return out
		}
	}
	return in
}

func (s *Store[A, M, E, S]) transformEvents(in <-chan E) <-chan E {
	if t, ok := s.reactor.(EventTransformer[E]); ok {
		if out := t.TransformEvents(s.ctx, in); out != nil {
			return out
		}
	}
	return in
}

func (s *Store[A, M, E, S]) transformErrors(in <-chan error) <-chan error {
	if t, ok := s.reactor.(ErrorTransformer); ok {
		if out := t.TransformErrors(s.ctx, in); out != nil {
			return out
		}
	}
	return in
}
