package sim

import (
	"testing"
	"time"
)

func TestFrameTimerDelta(t *testing.T) {
	start := time.Unix(1000, 0)
	timer := NewFrameTimer(DefaultMaxDt)

	tests := []struct {
		name string
		at   time.Duration
		want float64
	}{
		{"first frame", 0, 0},
		{"16ms", 16 * time.Millisecond, 0.016},
		{"clamped pause", 10 * time.Second, DefaultMaxDt},
		{"backwards", 5 * time.Second, 0},
		{"after backwards", 5*time.Second + 20*time.Millisecond, 0.02},
	}

	for _, tt := range tests {
		got := timer.Delta(start.Add(tt.at))
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: Delta = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFrameTimerDefaultMax(t *testing.T) {
	if got := NewFrameTimer(0).MaxDt; got != DefaultMaxDt {
		t.Errorf("MaxDt = %v, want %v", got, DefaultMaxDt)
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewManualClock(start)

	c.Advance(time.Second)
	if got := c.Now().Sub(start); got != time.Second {
		t.Errorf("advanced %v, want 1s", got)
	}

	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set did not rewind clock")
	}
}

func TestSceneTogglePause(t *testing.T) {
	s := DefaultScene()
	s.TogglePause()
	if !s.Paused {
		t.Error("expected paused")
	}
	s.TogglePause()
	if s.Paused {
		t.Error("expected running")
	}
}
