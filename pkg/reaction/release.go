package reaction

import "context"

type releaseKey struct{}

// WithRelease returns a context carrying fn. A store hands such a context to
// React so that a sequence can give up its place in the delivery order.
func WithRelease(ctx context.Context, fn func()) context.Context {
	if fn == nil {
		return ctx
	}
	return context.WithValue(ctx, releaseKey{}, fn)
}

// Release tells the store that the sequence built with ctx is about to wait.
// Reactions of later actions are then no longer held back behind it, and
// whatever the sequence yields afterwards is delivered as soon as it is ready.
//
// After and FromFunc call Release before blocking. Custom sequences that wait
// on timers, channels or I/O should call it too. Release is idempotent and a
// no-op for contexts without a release hook.
func Release(ctx context.Context) {
	if ctx == nil {
		return
	}
	if fn, ok := ctx.Value(releaseKey{}).(func()); ok {
		fn()
	}
}
