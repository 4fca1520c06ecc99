package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

type Sample struct {
	T       float64
	X, Y    float64
	VX, VY  float64
	Contact physics.Contact
}

type Result struct {
	Dt       float64
	Duration float64
	Bounds   physics.Bounds
	Radius   float64
	Samples  []Sample
	Metrics  map[string]float64

	// Apexes holds the height above the floor rest position of every
	// apex reached after a floor bounce.
	Apexes []float64
}

// Trace runs cfg for duration simulated seconds in steps of dt.
func Trace(ctx context.Context, cfg *config.Config, duration, dt float64) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dt <= 0 || dt > cfg.MaxDt {
		return nil, dynamo.NewParamError("dt", dt)
	}
	if duration <= 0 {
		return nil, dynamo.NewParamError("duration", duration)
	}

	steps := int(duration/dt + 0.5)
	bounds := cfg.Bounds()
	res := &Result{
		Dt:       dt,
		Duration: duration,
		Bounds:   bounds,
		Radius:   cfg.Ball.Radius,
		Samples:  make([]Sample, 0, steps+1),
	}

	scene := sim.NewScene(cfg.PhysicsBall(), cfg.PhysicsWorld())
	start := time.Unix(0, 0)

	recorder := sim.PresenterFunc(func(f sim.Frame) {
		res.Samples = append(res.Samples, Sample{
			T:       f.Time,
			X:       f.Ball.X,
			Y:       f.Ball.Y,
			VX:      f.Ball.VX,
			VY:      f.Ball.VY,
			Contact: f.Impact.Contact,
		})
	})

	driver := sim.New(scene, sim.NewManualClock(start), sim.FixedBounds(bounds), recorder)
	driver.SetMaxDt(cfg.MaxDt)

	ms := metrics.Default()
	for _, m := range ms {
		driver.AddObserver(m)
	}
	apex := newApexTracker(metrics.DefaultBounceSpeed)
	driver.AddObserver(apex)

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		// the first frame only primes the timer
		for i := 0; i <= steps; i++ {
			select {
			case ticks <- start.Add(tickOffset(i, dt)):
			case <-ctx.Done():
				return
			}
		}
	}()

	err := driver.Run(ctx, ticks)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("trace interrupted after %d frames: %w", len(res.Samples), err)
	}

	res.Metrics = metrics.Snapshot(ms)
	res.Apexes = apex.heights
	return res, nil
}

// tickOffset is the timestamp of frame i rounded to the nearest
// nanosecond, so rounding never accumulates across frames.
func tickOffset(i int, dt float64) time.Duration {
	return time.Duration(math.Round(float64(i) * dt * float64(time.Second)))
}

// Heights returns the ball height above its floor rest position for
// every sample.
func (r *Result) Heights() []float64 {
	floor := r.Bounds.H - r.Radius
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = floor - s.Y
	}
	return out
}

func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}
