package metrics

import (
	"math"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

// Metric accumulates a scalar over frames. Every Metric is also a
// sim.Observer so it can be attached to a driver directly.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Bounces counts floor contacts with a real impact. A resting ball
// touches the floor every frame; those touches fall under MinSpeed.
type Bounces struct {
	MinSpeed float64
	count    int
}

func NewBounces(minSpeed float64) *Bounces {
	return &Bounces{MinSpeed: minSpeed}
}

func (b *Bounces) Name() string { return "bounces" }

func (b *Bounces) OnFrame(f sim.Frame) {
	if f.Impact.Contact.Has(physics.ContactFloor) && f.Impact.Speed >= b.MinSpeed {
		b.count++
	}
}

func (b *Bounces) Value() float64 { return float64(b.count) }
func (b *Bounces) Reset()         { b.count = 0 }

type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) OnFrame(f sim.Frame) {
	p.peak = math.Max(p.peak, f.Ball.Speed())
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }

// Energy reports the mechanical energy of the latest frame.
type Energy struct {
	last float64
}

func NewEnergy() *Energy { return &Energy{} }

func (e *Energy) Name() string { return "energy" }

func (e *Energy) OnFrame(f sim.Frame) {
	e.last = f.Ball.Energy(f.World, f.Bounds)
}

func (e *Energy) Value() float64 { return e.last }
func (e *Energy) Reset()         { e.last = 0 }

// SettleTime is the simulated time at which the ball first came to rest
// on the floor with negligible horizontal speed, or -1 if it has not.
type SettleTime struct {
	MaxVX float64
	at    float64
}

func NewSettleTime(maxVX float64) *SettleTime {
	return &SettleTime{MaxVX: maxVX, at: -1}
}

func (s *SettleTime) Name() string { return "settle_time" }

func (s *SettleTime) OnFrame(f sim.Frame) {
	if s.at >= 0 {
		return
	}
	b := f.Ball
	if b.Resting(f.Bounds) && math.Abs(b.VX) < s.MaxVX {
		s.at = f.Time
	}
}

func (s *SettleTime) Value() float64 { return s.at }
func (s *SettleTime) Reset()         { s.at = -1 }

// DefaultBounceSpeed separates real bounces from the per-frame floor
// contact of a resting ball.
const DefaultBounceSpeed = 60.0

// Default returns the metric set used by the trace command and the
// front-end stats panels.
func Default() []Metric {
	return []Metric{
		NewBounces(DefaultBounceSpeed),
		NewPeakSpeed(),
		NewEnergy(),
		NewSettleTime(1),
	}
}

// Snapshot collects current values keyed by metric name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
