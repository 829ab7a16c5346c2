// Package reaction defines the tagged outcome of reacting to an action.
//
// A Reaction carries exactly one of: a follow-up action, a mutation for the
// reducer, an event for subscribers, or an error. Reactors return lazily
// produced sequences of reactions (iter.Seq), which lets one action yield
// nothing, a single mutation, or a long-lived stream such as a delayed
// follow-up:
//
//	var r = reaction.For[Action, Mutation, Event]()
//
//	func (sleeper) React(ctx context.Context, a Action, s State) (iter.Seq[reaction.Reaction[Action, Mutation, Event]], error) {
//		switch a.(type) {
//		case Sleep:
//			return r.Concat(
//				r.Just(r.Mutation(SetStatus("sleeping"))),
//				r.After(ctx, time.Second, r.Just(r.Action(Wakeup{}))),
//			), nil
//		}
//		return r.Empty(), nil
//	}
//
// Sequence helpers honour context cancellation so a disposed store stops
// pending timers.
package reaction
