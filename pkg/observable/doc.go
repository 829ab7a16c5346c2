// Package observable provides small, synchronous broadcast primitives used to
// publish store state, events and errors.
//
// Cell holds a current value and replays it to every new subscriber before
// delivering later updates. Subject broadcasts values without replay. Field
// wraps a Cell for values that an application wants to expose explicitly,
// and Select derives a distinct-until-changed view of one part of a value.
//
// Basic usage:
//
//	cell := observable.NewCell(0)
//	sub := cell.Subscribe(func(v int) {
//		fmt.Println("value:", v)
//	})
//	defer sub.Unsubscribe()
//
//	cell.Set(1) // prints "value: 1" after the replayed "value: 0"
//
// Callbacks run on the goroutine that calls Set or Publish. A callback is never
// invoked concurrently with itself: a value that reaches a subscriber while its
// callback is still running, for example because the callback itself calls Set
// on the same cell, is queued and delivered right after the callback returns.
// A clamping subscriber therefore works as expected:
//
//	cell.Subscribe(func(v int) {
//		if v > 10 {
//			cell.Set(10)
//		}
//	})
//
// Subscribing and unsubscribing from inside a callback is safe; a subscriber
// added during a notification does not receive that notification, only its own
// replay and later values.
package observable
