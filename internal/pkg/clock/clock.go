// Package clock supplies the timestamps written to listings, bookings, reviews and users.
package clock

import (
	"sync"
	"time"
)

// Precision is the finest resolution both stores keep; Mongo dates are
// millisecond based, so createdAt reads back equal to what was written.
const Precision = time.Millisecond

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

type RealClock struct{}

func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}

// MockClock is safe for concurrent use by the booking race tests.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock { return &MockClock{now: t} }

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
