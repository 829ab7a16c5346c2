package middleware

// Dispatch forwards a value one step further down a chain.
type Dispatch[T any] func(T) T

// StateFunc returns the latest published state snapshot.
type StateFunc[S any] func() S

// Middleware intercepts values of type T before they reach the terminal dispatch.
// It receives the state accessor once at build time and wraps next.
// A middleware may call next zero, one or several times.
type Middleware[S, T any] func(state StateFunc[S]) func(next Dispatch[T]) Dispatch[T]

// Postware is a middleware specialized to state publication.
type Postware[S any] Middleware[S, S]

// Chain composes mws around terminal so that mws[0] runs first.
// Nil middlewares are skipped.
func Chain[S, T any](state StateFunc[S], terminal Dispatch[T], mws ...Middleware[S, T]) Dispatch[T] {
	if terminal == nil {
		terminal = Identity[T]
	}

	d := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		d = mws[i](state)(d)
	}
	return d
}

// ChainPostware composes postware around the publishing terminal.
func ChainPostware[S any](state StateFunc[S], publish Dispatch[S], pws ...Postware[S]) Dispatch[S] {
	mws := make([]Middleware[S, S], 0, len(pws))
	for _, p := range pws {
		if p != nil {
			mws = append(mws, Middleware[S, S](p))
		}
	}
	return Chain(state, publish, mws...)
}

// Identity is a terminal that returns its input unchanged.
func Identity[T any](v T) T {
	return v
}
