// Package storekit provides a unidirectional, type-safe state container for Go applications.
//
// A store takes actions, hands them to application code that reacts with a lazy
// sequence of follow-up actions, mutations, events and errors, folds mutations
// into an immutable state value and publishes state, events and errors to
// subscribers. Every leg of the flow can be intercepted with typed middleware.
//
// Key Features:
//
//   - Generic stores over application-defined action, mutation, event and state types
//   - Per-leg middleware and postware with access to the current state
//   - Serialized reduction with ordered delivery of reactions from one action
//   - Error and panic containment without stopping the store
//   - Stream transform hooks for composing stores
//   - Environment-driven configuration and structured logging via slog
//
// Packages:
//
//   - pkg/store: the store, reactor contract, builder and configuration
//   - pkg/reaction: the reaction type and sequence helpers for reactors
//   - pkg/middleware: middleware chain and common middleware
//   - pkg/observable: replaying cells, subjects, field wrappers and selections
//   - pkg/streams: unbounded queue and channel operators used for transforms
//   - pkg/logger: slog factory and attribute helpers
//   - pkg/config: environment loader
//
// Basic Usage:
//
//	type Action struct{ Name string }
//	type Inc struct{}
//	type State struct{ Count int }
//
//	var rx = reaction.For[Action, Inc, string]()
//
//	s := store.MustNew[Action, Inc, string, State](State{}, store.Funcs[Action, Inc, string, State]{
//		ReactFn: func(ctx context.Context, a Action, st State) (iter.Seq[reaction.Reaction[Action, Inc, string]], error) {
//			return rx.Just(rx.Mutation(Inc{})), nil
//		},
//		ReduceFn: func(_ Inc, st State) State {
//			st.Count++
//			return st
//		},
//	})
//	defer s.Close()
//
//	s.States().Subscribe(func(st State) { fmt.Println(st.Count) })
//	s.Send(Action{Name: "bump"})
package storekit
