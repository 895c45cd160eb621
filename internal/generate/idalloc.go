package generate

import (
	"fmt"
	"math/rand"
	"sync/atomic"
)

// IDAllocator issues primary keys of the form prefix + fixed-width random
// digits and guarantees uniqueness within the run: a candidate that collides
// with an already-issued value is re-rolled until a novel one is found. The
// retry loop is unbounded by contract; with the configured ID spaces
// (10^6-10^9 combinations) and realistic volumes the expected retry count
// stays near zero.
//
// One allocator is owned per generator instance; there is no process-wide
// state, so independent runs and tests never interfere.
type IDAllocator struct {
	prefix string
	min    int64
	max    int64
	rnd    *rand.Rand
	issued map[string]struct{}
}

// NewIDAllocator builds an allocator issuing prefix + N where N is drawn
// uniformly from [min, max]. min and max must both have the intended digit
// width (e.g. 1000000 and 9999999 for a 7-digit suffix).
func NewIDAllocator(rnd *rand.Rand, prefix string, min, max int64) *IDAllocator {
	return &IDAllocator{
		prefix: prefix,
		min:    min,
		max:    max,
		rnd:    rnd,
		issued: make(map[string]struct{}),
	}
}

// Next returns a never-before-issued identifier.
func (a *IDAllocator) Next() string {
	for {
		id := fmt.Sprintf("%s%d", a.prefix, a.min+a.rnd.Int63n(a.max-a.min+1))
		if _, taken := a.issued[id]; taken {
			continue
		}
		a.issued[id] = struct{}{}
		return id
	}
}

// Issued reports how many identifiers have been handed out.
func (a *IDAllocator) Issued() int {
	return len(a.issued)
}

// Sequence is a monotonic counter for entities keyed by plain integers
// (fraud alerts, user logins, investment accounts). No collision handling
// is needed.
type Sequence struct {
	n int64
}

// Next returns the next value, starting at 1.
func (s *Sequence) Next() int64 {
	return atomic.AddInt64(&s.n, 1)
}
