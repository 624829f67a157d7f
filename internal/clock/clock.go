// Package clock provides the monotonic time source used by the race.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current instant and elapsed durations.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// System is a Clock backed by time.Now. Instants carry the monotonic reading,
// so Since never goes backwards when the wall clock is adjusted.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}

// Since implements Clock.
func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Manual is a Clock that only moves when advanced.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Since implements Clock.
func (m *Manual) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

// Advance moves the clock forward. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
