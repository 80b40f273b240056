// Package testutil provides deterministic stand-ins for the clock and id
// sources, so that scenario runs and golden files are reproducible.
package testutil

import (
	"sync"
	"time"
)

// SeqCounter hands out trace sequence numbers 1, 2, 3, ...
//
// Thread-safety: all methods are safe for concurrent use.
type SeqCounter struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqCounter creates a counter whose first Next() returns 1.
func NewSeqCounter() *SeqCounter {
	return &SeqCounter{}
}

// Next increments and returns the sequence number.
func (c *SeqCounter) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the last number handed out, or 0.
func (c *SeqCounter) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset rewinds the counter so the next call returns 1 again.
func (c *SeqCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}

// SteppingClock is a wall clock that starts at a fixed instant and moves
// forward by Step on every reading after the first.
//
// With Step == 0 it always reports the same instant, which pins
// CurrentTimeParts; with Step > 0 a measured call observes exactly Step.
//
// Thread-safety: all methods are safe for concurrent use.
type SteppingClock struct {
	mu    sync.Mutex
	start time.Time
	step  time.Duration
	reads int64
}

// NewSteppingClock creates a clock at start advancing by step per read.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{start: start, step: step}
}

// Now returns start + reads*step and counts the read.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.start.Add(time.Duration(c.reads) * c.step)
	c.reads++
	return t
}

// Reads returns how many times Now has been called.
func (c *SteppingClock) Reads() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Reset rewinds the clock to its start instant.
func (c *SteppingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads = 0
}
