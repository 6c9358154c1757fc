package observable

import (
	"slices"

	"github.com/dmitrymomot/eventkit"
)

// List is a dynamic array that broadcasts its changes. It owns one
// broadcaster per change kind; subscribers see a notification after the
// mutation has been applied, so reading the list from a callback observes
// the new state.
//
// Mutations must be confined to one goroutine. The broadcasters the list
// owns are the root package's, so subscribing and unsubscribing may happen
// from any goroutine at any time.
//
// The zero value is an empty list ready for use.
type List[T any] struct {
	items []T

	insert  eventkit.Broadcaster[Insertion[T]]
	remove  eventkit.Broadcaster[Removal[T]]
	replace eventkit.Broadcaster[Replacement[T]]
}

// OnInsert returns the broadcaster firing after an element is added.
func (l *List[T]) OnInsert() *eventkit.Broadcaster[Insertion[T]] {
	return &l.insert
}

// OnRemove returns the broadcaster firing after an element is removed.
func (l *List[T]) OnRemove() *eventkit.Broadcaster[Removal[T]] {
	return &l.remove
}

// OnReplace returns the broadcaster firing after an element is overwritten.
func (l *List[T]) OnReplace() *eventkit.Broadcaster[Replacement[T]] {
	return &l.replace
}

// Len reports the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i, panicking when out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	return slices.Clone(l.items)
}

// IndexFunc returns the index of the first element satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	return slices.IndexFunc(l.items, f)
}

// Append adds v at the tail.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
	l.insert.Fire(Insertion[T]{Index: len(l.items) - 1, Item: v})
}

// Insert adds v at index i, shifting later elements up. Panics when i is out
// of range; i == Len() appends.
func (l *List[T]) Insert(i int, v T) {
	l.items = slices.Insert(l.items, i, v)
	l.insert.Fire(Insertion[T]{Index: i, Item: v})
}

// RemoveAt removes and returns the element at index i, shifting later
// elements down. Panics when out of range.
func (l *List[T]) RemoveAt(i int) T {
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.remove.Fire(Removal[T]{Index: i, Item: v})
	return v
}

// Set overwrites the element at index i and returns the previous value.
// Panics when out of range.
func (l *List[T]) Set(i int, v T) T {
	old := l.items[i]
	l.items[i] = v
	l.replace.Fire(Replacement[T]{Index: i, Old: old, New: v})
	return old
}

// Clear removes all elements, firing a removal per element from the tail
// toward the head.
func (l *List[T]) Clear() {
	for len(l.items) > 0 {
		i := len(l.items) - 1
		v := l.items[i]
		l.items = l.items[:i]
		l.remove.Fire(Removal[T]{Index: i, Item: v})
	}
	l.items = nil
}
