// Package streams provides channel-based stream operators used by store
// transform hooks and by the store's own intake queues.
//
// Queue is an unbounded, non-blocking FIFO with a channel output. Merge, Map,
// Filter, Debounce and Throttle are whole-stream operators that a reactor can
// apply in its Transform hooks, for example to debounce search input or to
// merge mutations coming from another store:
//
//	func (r *searchReactor) TransformActions(ctx context.Context, in <-chan Action) <-chan Action {
//		return streams.Debounce(ctx, in, 300*time.Millisecond)
//	}
//
//	func (r *cartReactor) TransformMutations(ctx context.Context, in <-chan Mutation) <-chan Mutation {
//		external := streams.Map(ctx, streams.FromObservable(ctx, r.session.Events()), toCartMutation)
//		return streams.Merge(ctx, in, external)
//	}
//
// Every operator closes its output when its input closes or ctx is cancelled.
package streams
