// Package timer provides a background countdown that the UI loop polls.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Countdown decrements a remaining-seconds value once per interval on its
// own goroutine. Reads never block.
//
// Reaching zero does not clear the running flag: the owner observes
// Remaining() == 0 while IsRunning() is true and calls Stop.
type Countdown struct {
	interval time.Duration

	running   atomic.Bool
	remaining atomic.Int64

	mu   sync.Mutex
	stop chan struct{}
}

// New returns a stopped Countdown ticking once per interval.
func New(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// Start begins counting down from seconds. It is a no-op while running.
func (c *Countdown) Start(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running.Load() {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	stop := make(chan struct{})
	c.stop = stop
	c.remaining.Store(int64(seconds))
	c.running.Store(true)
	go c.run(stop)
}

// Stop clears the running flag and ends the current run.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.running.Store(false)
}

// IsRunning reports whether a run was started and not yet stopped.
func (c *Countdown) IsRunning() bool {
	return c.running.Load()
}

// Remaining returns the seconds left in the current or last run.
func (c *Countdown) Remaining() int {
	return int(c.remaining.Load())
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for c.remaining.Load() > 0 {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !c.decrement(stop) {
				return
			}
		}
	}
}

// decrement applies one tick for the run owning stop. A superseded run
// must not touch remaining, so the check and the write share the lock.
func (c *Countdown) decrement(stop chan struct{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != stop {
		return false
	}
	return c.remaining.Add(-1) > 0
}
