// Package observable provides collections that broadcast their changes
// through the root package's broadcasters.
//
// A List owns one broadcaster per change kind: insertions, removals, and
// replacements. Code interested in changes subscribes to the relevant
// broadcaster and receives a payload naming the index and the values
// involved:
//
//	var todo observable.List[string]
//
//	todo.OnInsert().SubscribeFunc(func(e observable.Insertion[string]) {
//		fmt.Printf("added %q at %d\n", e.Item, e.Index)
//	})
//
//	todo.Append("write tests") // added "write tests" at 0
//
// Notifications fire after the mutation is applied, on the mutating
// goroutine. The list itself is not synchronized; the broadcasters are, so
// observers may come and go from any goroutine.
package observable
