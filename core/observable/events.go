package observable

// Insertion describes an element added to a list.
type Insertion[T any] struct {
	Index int
	Item  T
}

// Removal describes an element removed from a list.
type Removal[T any] struct {
	Index int
	Item  T
}

// Replacement describes an element overwritten in place.
type Replacement[T any] struct {
	Index int
	Old   T
	New   T
}
