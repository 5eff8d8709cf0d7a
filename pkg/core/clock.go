package core

import (
	"sync"
	"time"
)

// Clock supplies "now" timestamps. Wall-clock reads are the only impure
// dependency in the core; injecting a Clock keeps lifecycle transitions
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock, truncated to microsecond precision so
// that stamps survive the file name codec unchanged.
var SystemClock Clock = ClockFunc(func() time.Time {
	return time.Now().Truncate(time.Microsecond)
})

// monotonicClock guarantees strictly increasing stamps. Sequential edits
// issued faster than the wall clock resolution would otherwise be rejected
// by the history ordering check.
type monotonicClock struct {
	mu    sync.Mutex
	inner Clock
	last  time.Time
}

// NewMonotonicClock wraps inner so that every call returns a stamp strictly
// after the previous one, at microsecond granularity.
func NewMonotonicClock(inner Clock) Clock {
	if inner == nil {
		inner = SystemClock
	}
	return &monotonicClock{inner: inner}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.inner.Now().Truncate(time.Microsecond)
	if !now.After(c.last) {
		now = c.last.Add(time.Microsecond)
	}
	c.last = now
	return now
}
