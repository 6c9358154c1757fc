package eventkit

// Stats reports snapshot lifecycle counters for observability and leak
// detection in tests. Counters are cumulative for the lifetime of the
// broadcaster.
type Stats struct {
	// Allocations is the number of subscriber buffers allocated.
	Allocations int64

	// Recycles is the number of publications served from the recycle slot
	// instead of a fresh allocation.
	Recycles int64

	// Discards is the number of retired buffers handed to the garbage
	// collector, either displaced from the recycle slot or too small to
	// reuse.
	Discards int64

	// Live is Allocations minus Discards: buffers still reachable through
	// the broadcaster or in-flight operations. A quiescent broadcaster
	// holds at most two (the active snapshot and the recycle slot).
	Live int64
}
