// Package signal provides single-goroutine signals with the same surface as
// the root broadcaster but none of its synchronization cost.
//
// Use a Signal where events are raised and consumed on one goroutine, a UI
// loop or a state machine for instance, and a Broadcaster where goroutines
// meet. Handles are shared with the root package, so moving a subscriber
// from one to the other requires no changes at the call sites.
//
// Basic usage:
//
//	var clicks signal.Signal[int]
//
//	sub := clicks.SubscribeFunc(func(id int) {
//		fmt.Println("clicked", id)
//	})
//
//	clicks.Fire(1)
//	clicks.Unsubscribe(sub)
//
// Callbacks may subscribe and unsubscribe on the firing signal; the running
// pass always completes over the list captured when Fire was entered.
package signal
