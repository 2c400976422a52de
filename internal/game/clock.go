package game

import (
	"sync"
	"time"
)

// Clock tells the engine what time it is. Pulse measures elapsed time
// with it and saves are stamped with it.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock only moves when told to.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{t: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// pacer turns successive clock readings into tick lengths.
type pacer struct {
	clock Clock
	last  time.Time
}

// lap returns the time since the previous lap, or zero on the first one.
func (p *pacer) lap() time.Duration {
	now := p.clock.Now()
	var d time.Duration
	if !p.last.IsZero() {
		d = now.Sub(p.last)
	}
	p.last = now
	return d
}

// reset forgets the previous lap.
func (p *pacer) reset() { p.last = time.Time{} }
