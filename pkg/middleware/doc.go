// Package middleware implements composable interceptors for store legs.
//
// A Middleware receives a state accessor and the next Dispatch in the chain and
// returns its own Dispatch. Chain builds the composition so that the first
// declared middleware runs first and decides whether, how and how many times
// the rest of the chain runs:
//
//	skipAnonymous := func(state middleware.StateFunc[State]) func(middleware.Dispatch[Action]) middleware.Dispatch[Action] {
//		return func(next middleware.Dispatch[Action]) middleware.Dispatch[Action] {
//			return func(a Action) Action {
//				if state().User == "" {
//					return a // swallowed
//				}
//				return next(a)
//			}
//		}
//	}
//
//	dispatch := middleware.Chain(s.State, terminal, skipAnonymous, middleware.Logging[State, Action](log, "action"))
//
// Postware has the same shape but is applied to every reduced state before it
// is published.
//
// Middlewares run synchronously on the goroutine of their leg and must not block.
package middleware
