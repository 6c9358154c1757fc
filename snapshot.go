package eventkit

import "sync/atomic"

// minCapacity is the smallest buffer a snapshot is allocated with.
const minCapacity = 4

// snapshot is an immutable, reference-counted view of the subscriber list.
// Contents are written only while the snapshot is private to a single writer
// (freshly allocated, or taken out of the recycle slot at refs == 0) and are
// frozen by the refs.Store(1) publication barrier. refs counts readers in
// flight plus one for whichever slot or pending publication owns the
// snapshot; it returns to zero exactly once per publication cycle.
type snapshot[E comparable] struct {
	refs  atomic.Int32
	buf   []E // len == cap, assigned once at allocation
	count int
}

// view returns the logical entries. Stable while a reference is held, since
// buffers are rewritten only at refs == 0.
func (s *snapshot[E]) view() []E {
	return s.buf[:s.count]
}

// slots is the shared state behind a broadcaster: the active snapshot
// pointer, a single-slot cache of one retired buffer, and lifecycle
// counters. All coordination happens through the two pointers and each
// snapshot's reference count; there are no locks.
type slots[E comparable] struct {
	active  atomic.Pointer[snapshot[E]]
	recycle atomic.Pointer[snapshot[E]]

	// floor raises the minimum allocation capacity, see WithCapacity.
	floor int

	allocated atomic.Int64
	recycled  atomic.Int64
	discarded atomic.Int64
}

// acquire takes a read reference on the current snapshot, or returns nil
// when there are no subscribers. A dead snapshot is never revived: refs == 0
// means it was retired or is a publication still in flight, so the active
// pointer is reloaded rather than the count resurrected. A successful CAS
// here synchronizes with the publisher's refs.Store(1), so the entries the
// caller goes on to read are fully built.
func (s *slots[E]) acquire() *snapshot[E] {
	for {
		sn := s.active.Load()
		if sn == nil {
			return nil
		}
		r := sn.refs.Load()
		if r == 0 {
			continue
		}
		if sn.refs.CompareAndSwap(r, r+1) {
			return sn
		}
	}
}

// release drops one reference. Whichever goroutine observes the zero
// transition retires the snapshot into the recycle slot; the previous
// occupant, if any, is left to the garbage collector.
func (s *slots[E]) release(sn *snapshot[E]) {
	if sn.refs.Add(-1) == 0 {
		if old := s.recycle.Swap(sn); old != nil {
			s.discarded.Add(1)
		}
	}
}

// obtain returns a writer-private snapshot sized for count entries, reusing
// the recycled buffer when its capacity suffices. The returned snapshot has
// refs == 0 and is invisible to readers until the caller publishes it.
func (s *slots[E]) obtain(count int) *snapshot[E] {
	if sn := s.recycle.Swap(nil); sn != nil {
		if cap(sn.buf) >= count {
			s.recycled.Add(1)
			sn.count = count
			return sn
		}
		s.discarded.Add(1)
	}
	s.allocated.Add(1)
	return &snapshot[E]{buf: make([]E, s.capacityFor(count)), count: count}
}

// capacityFor rounds up to the next power of two, at least minCapacity and
// at least the configured floor.
func (s *slots[E]) capacityFor(n int) int {
	c := minCapacity
	for c < n || c < s.floor {
		c <<= 1
	}
	return c
}

// subscribe publishes a snapshot with e appended at the tail, retrying until
// the compare-and-swap of the active slot wins. The reference taken on the
// starting snapshot doubles as an ABA guard: a referenced snapshot can never
// be retired, recycled and republished, so a successful swap always replaces
// the exact list the new one was built from.
func (s *slots[E]) subscribe(e E) {
	for {
		old := s.acquire()
		var sn *snapshot[E]
		if old == nil {
			sn = s.obtain(1)
		} else {
			sn = s.obtain(old.count + 1)
			copy(sn.buf, old.view())
		}
		sn.buf[sn.count-1] = e
		clear(sn.buf[sn.count:])
		sn.refs.Store(1)
		if s.active.CompareAndSwap(old, sn) {
			if old != nil {
				s.release(old) // the reference taken above
				s.release(old) // the slot reference displaced by the swap
			}
			return
		}
		if old != nil {
			s.release(old)
		}
		s.release(sn) // parks the built snapshot for the retry to reuse
	}
}

// unsubscribe publishes a snapshot with the first entry equal to e removed
// and reports whether one was found. Removing the last entry publishes nil,
// so an idle broadcaster holds no snapshot at all.
func (s *slots[E]) unsubscribe(e E) bool {
	for {
		old := s.acquire()
		if old == nil {
			return false
		}
		at := -1
		for i, have := range old.view() {
			if have == e {
				at = i
				break
			}
		}
		if at < 0 {
			s.release(old)
			return false
		}
		if old.count == 1 {
			if s.active.CompareAndSwap(old, nil) {
				s.release(old)
				s.release(old)
				return true
			}
			s.release(old)
			continue
		}
		sn := s.obtain(old.count - 1)
		copy(sn.buf, old.view()[:at])
		copy(sn.buf[at:], old.view()[at+1:])
		clear(sn.buf[sn.count:])
		sn.refs.Store(1)
		if s.active.CompareAndSwap(old, sn) {
			s.release(old)
			s.release(old)
			return true
		}
		s.release(old)
		s.release(sn)
	}
}

// count reads the logical size of the active snapshot. A reference is taken
// for the read because counts are rewritten when a buffer is recycled.
func (s *slots[E]) count() int {
	sn := s.acquire()
	if sn == nil {
		return 0
	}
	c := sn.count
	s.release(sn)
	return c
}

func (s *slots[E]) stats() Stats {
	allocated := s.allocated.Load()
	discarded := s.discarded.Load()
	return Stats{
		Allocations: allocated,
		Recycles:    s.recycled.Load(),
		Discards:    discarded,
		Live:        allocated - discarded,
	}
}
