package clock

import (
	"sync"
	"time"
)

// Clock provides the reference time for every moderation window
// (6 months, 1 year, 12 hours, calendar day). Always UTC.
type Clock interface {
	Now() time.Time
}

// Real returns the system clock.
func Real() Clock {
	return sysClock{}
}

type sysClock struct{}

func (sysClock) Now() time.Time {
	return time.Now().UTC()
}

// Frozen returns a settable clock for tests.
func Frozen(at time.Time) *FrozenClock {
	return &FrozenClock{at: at.UTC()}
}

type FrozenClock struct {
	mu sync.Mutex
	at time.Time
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

func (c *FrozenClock) Set(at time.Time) {
	c.mu.Lock()
	c.at = at.UTC()
	c.mu.Unlock()
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.at = c.at.Add(d)
	c.mu.Unlock()
}
