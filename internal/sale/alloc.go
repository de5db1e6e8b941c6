package sale

import "sync/atomic"

// IDAllocator hands out monotonically increasing ids. The store owns
// one allocator for sale ids and one for item ids; nothing else in
// the process mints ids.
type IDAllocator struct {
	next atomic.Int64
}

// NewIDAllocator returns an allocator whose first Next is start.
func NewIDAllocator(start int) *IDAllocator {
	a := &IDAllocator{}
	a.next.Store(int64(start))
	return a
}

// Next returns the next id. Safe for concurrent use; two callers can
// never receive the same id.
func (a *IDAllocator) Next() int {
	return int(a.next.Add(1) - 1)
}
