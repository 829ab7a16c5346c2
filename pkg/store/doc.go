// Package store implements a unidirectional state container driven by a Reactor.
//
// Actions enter through Send or Bind, pass the action middleware and reach the
// reactor's React method, which returns a lazy sequence of reactions. Each
// reaction is routed by kind: follow-up actions go back to the action intake,
// mutations pass the mutation middleware and are folded into state by Reduce,
// events and errors pass their own middleware and are published to
// subscribers. Every reduced state goes through postware before it is
// published on the state stream.
//
// # Usage
//
//	type Action interface{}
//	type Bump struct{}
//	type Inc struct{}
//	type State struct{ Count int }
//
//	var rx = reaction.For[Action, Inc, string]()
//
//	reactor := store.Funcs[Action, Inc, string, State]{
//		ReactFn: func(ctx context.Context, a Action, s State) (iter.Seq[reaction.Reaction[Action, Inc, string]], error) {
//			return rx.Just(rx.Mutation(Inc{})), nil
//		},
//		ReduceFn: func(_ Inc, s State) State {
//			s.Count++
//			return s
//		},
//	}
//
//	s, err := store.NewBuilder[Action, Inc, string, State](State{}, reactor).
//		WithActionMiddleware(middleware.Logging[State, Action](log, "action")).
//		WithOptions(store.WithName("counter"), store.WithLogger(log)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	s.States().Subscribe(func(st State) { fmt.Println(st.Count) })
//	s.Send(Bump{})
//
// # Ordering and concurrency
//
// Each leg runs on its own goroutine. Mutations are reduced one at a time in
// arrival order on the mutation leg, which is the only writer of state.
// Reactions produced by one React call are routed in emission order, and
// sequences of consecutive actions are routed in send order: a sequence starts
// only once the previous one has finished or called reaction.Release on its
// context. reaction.After and reaction.FromFunc release before waiting, so a
// delayed reaction does not hold back later actions. Custom sequences that
// block should release too. A reaction of kind action is queued and handled on
// a later turn of the action loop, never inline, so self-feeding reactors do
// not grow the stack.
//
// Subscriber callbacks and middleware run on pipeline goroutines and should
// return quickly.
//
// # Errors
//
// A failing or panicking React call is reported on Errors as a *ReactorError;
// the store keeps processing later actions. Errors never change state.
//
// # Configuration
//
// Config can be loaded from the environment with ConfigFromEnv and applied
// with WithConfig. It controls the store name, action rate limiting, the
// number of reaction sequences drained concurrently and the Close drain timeout.
package store
