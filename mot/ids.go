package mot

import "go.uber.org/atomic"

// IDAllocator hands out track identifiers. Identifiers are strictly increasing
// and never reused. It is safe for concurrent use.
type IDAllocator struct {
	last *atomic.Int64
}

// NewIDAllocator creates allocator whose first identifier is 1.
func NewIDAllocator() *IDAllocator {
	return NewIDAllocatorFrom(0)
}

// NewIDAllocatorFrom creates allocator whose first identifier is last+1.
func NewIDAllocatorFrom(last int64) *IDAllocator {
	return &IDAllocator{
		last: atomic.NewInt64(last),
	}
}

// Allocate returns next identifier
func (ids *IDAllocator) Allocate() int64 {
	return ids.last.Inc()
}

// Last returns most recently allocated identifier (or the seed when nothing was allocated)
func (ids *IDAllocator) Last() int64 {
	return ids.last.Load()
}
