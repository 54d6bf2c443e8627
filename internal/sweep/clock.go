package sweep

import "sync/atomic"

// Clock is a monotonic logical counter for sample ordering.
//
// Every sample in a run is stamped with a strictly increasing seq from
// this clock. Wall-clock time never participates: replay of a recorded
// run must reproduce the identical sequence regardless of when it runs.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though a sweep drives it from a single goroutine.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock resumed at a specific sequence number,
// used when appending to a previously recorded run.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and advances the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without advancing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
