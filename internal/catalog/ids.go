package catalog

import "sync/atomic"

// IDGenerator hands out record ids. Implementations must never return the
// same id twice for the lifetime of the process.
type IDGenerator interface {
	NextID() int64
}

// Sequence is a monotonic counter safe for concurrent use.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first id is start. Values below 1
// start at 1.
func NewSequence(start int64) *Sequence {
	if start < 1 {
		start = 1
	}
	s := &Sequence{}
	s.next.Store(start - 1)
	return s
}

func (s *Sequence) NextID() int64 {
	return s.next.Add(1)
}
