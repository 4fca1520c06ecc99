package sim

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// DefaultMaxDt caps a single frame step so a stalled or backgrounded
// window does not produce one explosive integration step.
const DefaultMaxDt = 1.0 / 20

// FrameTimer turns frame timestamps into a bounded delta in seconds.
type FrameTimer struct {
	MaxDt   float64
	last    time.Time
	started bool
}

func NewFrameTimer(maxDt float64) *FrameTimer {
	if maxDt <= 0 {
		maxDt = DefaultMaxDt
	}
	return &FrameTimer{MaxDt: maxDt}
}

// Delta returns seconds since the previous call clamped to [0, MaxDt].
// The first call returns 0.
func (f *FrameTimer) Delta(now time.Time) float64 {
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	dt := now.Sub(f.last).Seconds()
	f.last = now
	if dt < 0 {
		return 0
	}
	if dt > f.MaxDt {
		return f.MaxDt
	}
	return dt
}
