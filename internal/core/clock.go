package core

import "time"

// Clock reports milliseconds on a monotonic timeline.
// Only differences between two readings are meaningful.
type Clock interface {
	NowMs() int64
}

// MonotonicClock reads the process monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a clock whose zero is the moment of creation.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMs returns milliseconds elapsed since the clock was created.
func (c *MonotonicClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// FakeClock is a manually driven clock for tests and replays.
type FakeClock struct {
	ms int64
}

// NewFakeClock returns a fake clock reading start.
func NewFakeClock(start int64) *FakeClock {
	return &FakeClock{ms: start}
}

// NowMs returns the current fake reading.
func (c *FakeClock) NowMs() int64 {
	return c.ms
}

// Advance moves the clock forward by ms milliseconds.
func (c *FakeClock) Advance(ms int64) {
	c.ms += ms
}

// Set moves the clock to an absolute reading.
func (c *FakeClock) Set(ms int64) {
	c.ms = ms
}
