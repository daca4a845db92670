// Package reactive provides subscribable values with lazily acquired
// upstream resources.
//
// A value holds its current state and a list of subscribers. Subscribing
// delivers the current value immediately and then every subsequent change:
//
//	count := reactive.NewWritable(0, nil)
//	unsub := count.Subscribe(func(n int) { fmt.Println("count:", n) })
//	count.Set(5)
//	unsub()
//
// # Lazy activation
//
// A value may be given a StartFunc. It runs when the subscriber count goes
// from zero to one and receives a setter; the Stop it returns runs when the
// count drops back to zero. This is how a value wraps an external resource
// (an event listener, a socket) that should only exist while somebody is
// listening:
//
//	clicks := reactive.NewReadable(0, func(set func(int)) reactive.Stop {
//	    reg := button.AddEventListener("click", func(*dom.Event) { n++; set(n) })
//	    return reg.Remove
//	})
//
// # Derived values
//
// Derive and DeriveSet build values from other values. A derived value
// subscribes to its inputs only while it has subscribers of its own, so a
// chain of derivations activates (and releases) its sources on demand.
//
// # Ordering
//
// Notification is synchronous and follows subscription order. A Set issued
// from inside a subscriber of the same value is folded into the running
// notification pass: every subscriber ends up seeing the latest value, in
// order, without re-entrant delivery.
package reactive
