package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/middleware"
	"github.com/dmitrymomot/storekit/pkg/observable"
	"github.com/dmitrymomot/storekit/pkg/streams"
)

// Store drives a Reactor: it takes actions, reacts to them, reduces the
// resulting mutations into state and publishes state, events and errors.
// All methods are safe for concurrent use.
type Store[A, M, E, S any] struct {
	id      uuid.UUID
	cfg     Config
	reactor Reactor[A, M, E, S]
	log     *slog.Logger
	limiter *rate.Limiter

	state   *observable.Cell[S]
	actions *observable.Subject[A]
	events  *observable.Subject[E]
	errors  *observable.Subject[error]

	intake    *streams.Queue[A]
	mutations *streams.Queue[M]
	eventQ    *streams.Queue[E]
	errorQ    *streams.Queue[error]

	dispatchAction   middleware.Dispatch[A]
	dispatchMutation middleware.Dispatch[M]
	dispatchEvent    middleware.Dispatch[E]
	dispatchError    middleware.Dispatch[error]
	publish          middleware.Dispatch[S]

	// reduced is the fold accumulator, owned by the mutation leg goroutine.
	reduced S

	// tail is closed once the latest reaction sequence finished or released
	// its turn. Owned by the action leg goroutine.
	tail chan struct{}

	ctx       context.Context
	cancel    context.CancelFunc
	legs      errgroup.Group
	reactions errgroup.Group
	done      chan struct{}
}

func newStore[A, M, E, S any](initial S, reactor Reactor[A, M, E, S], o *options) *Store[A, M, E, S] {
	cfg := o.cfg.normalize()
	id := uuid.New()

	ctx, cancel := context.WithCancel(o.parent)

	s := &Store[A, M, E, S]{
		id:        id,
		cfg:       cfg,
		reactor:   reactor,
		log:       o.logger.With(logger.Store(cfg.Name), logger.StoreID(id.String())),
		state:     observable.NewCell(initial),
		actions:   observable.NewSubject[A](),
		events:    observable.NewSubject[E](),
		errors:    observable.NewSubject[error](),
		intake:    streams.NewQueue[A](ctx),
		mutations: streams.NewQueue[M](ctx),
		eventQ:    streams.NewQueue[E](ctx),
		errorQ:    streams.NewQueue[error](ctx),
		reduced:   initial,
		tail:      closedTurn(),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	if cfg.ActionRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.ActionRate), cfg.ActionBurst)
	}
	if cfg.MaxReactions > 0 {
		s.reactions.SetLimit(cfg.MaxReactions)
	}

	return s
}

// ID returns the unique identifier of this store instance.
func (s *Store[A, M, E, S]) ID() uuid.UUID {
	return s.id
}

// Name returns the configured store name.
func (s *Store[A, M, E, S]) Name() string {
	return s.cfg.Name
}

// Send enqueues an action. It never blocks and is a no-op once the store is closed.
func (s *Store[A, M, E, S]) Send(action A) {
	if s.ctx.Err() != nil {
		return
	}
	if !s.intake.Push(action) {
		s.log.DebugContext(s.ctx, "action dropped: store closed", logger.Action(action))
	}
}

// Bind feeds every action received on actions into the store until the channel
// is closed, ctx is cancelled or the store is closed.
func (s *Store[A, M, E, S]) Bind(ctx context.Context, actions <-chan A) error {
	if actions == nil {
		return ErrNilChannel
	}
	if s.ctx.Err() != nil {
		return ErrClosed
	}

	go func() {
		for {
			select {
			case a, ok := <-actions:
				if !ok {
					return
				}
				s.Send(a)
			case <-ctx.Done():
				return
			case <-s.ctx.Done():
				return
			}
		}
	}()

	return nil
}

// State returns the latest published state.
func (s *Store[A, M, E, S]) State() S {
	return s.state.Get()
}

// States returns the state stream. Subscribers receive the current state
// immediately and every published state afterwards.
func (s *Store[A, M, E, S]) States() observable.View[S] {
	return s.state.View()
}

// Actions returns the stream of actions that passed the action middleware
// and are about to be handed to the reactor. Nothing is replayed.
func (s *Store[A, M, E, S]) Actions() observable.Observable[A] {
	return s.actions
}

// Events returns the event stream. Nothing is replayed.
func (s *Store[A, M, E, S]) Events() observable.Observable[E] {
	return s.events
}

// Errors returns the error stream: reactor failures wrapped in *ReactorError
// and error reactions as produced. Nothing is replayed.
func (s *Store[A, M, E, S]) Errors() observable.Observable[error] {
	return s.errors
}

// Done is closed once every pipeline goroutine has stopped.
func (s *Store[A, M, E, S]) Done() <-chan struct{} {
	return s.done
}

// Close disposes the store: pending actions, mutations, events and errors are
// dropped, running reactions see their context cancelled and no state is
// published once Close returns. Close waits up to Config.DrainTimeout for the
// pipeline to stop and is safe to call multiple times.
//
// Subscriber callbacks and middleware run on pipeline goroutines, so calling
// Close synchronously from them cannot finish the drain: it cancels the store,
// waits for the full DrainTimeout and returns ErrDrainTimeout. Use
// go s.Close() there.
func (s *Store[A, M, E, S]) Close() error {
	if s.ctx.Err() == nil {
		s.log.InfoContext(s.ctx, "store closing")
	}
	s.cancel()

	timer := time.NewTimer(s.cfg.DrainTimeout)
	defer timer.Stop()

	select {
	case <-s.done:
		return nil
	case <-timer.C:
		s.log.WarnContext(s.ctx, "store did not stop in time",
			slog.String("hint", "Close called synchronously from a subscriber or middleware, or a reaction ignoring its context"),
			logger.Duration(s.cfg.DrainTimeout),
			logger.Error(ErrDrainTimeout))
		return ErrDrainTimeout
	}
}

func closedTurn() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// closed reports whether the store has been disposed.
func (s *Store[A, M, E, S]) closed() bool {
	return s.ctx.Err() != nil
}
