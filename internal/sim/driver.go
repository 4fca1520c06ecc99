package sim

import (
	"context"
	"time"

	"github.com/san-kum/bounce/internal/physics"
)

// Driver runs one simulation frame per display refresh: read bounds,
// derive a bounded dt, step unless paused, notify observers, present.
type Driver struct {
	scene     *Scene
	clock     Clock
	timer     *FrameTimer
	bounds    BoundsSource
	presenter Presenter
	observers []Observer

	time   float64
	frames int
}

func New(scene *Scene, clock Clock, bounds BoundsSource, presenter Presenter) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		scene:     scene,
		clock:     clock,
		timer:     NewFrameTimer(DefaultMaxDt),
		bounds:    bounds,
		presenter: presenter,
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) SetMaxDt(maxDt float64) {
	if maxDt > 0 {
		d.timer.MaxDt = maxDt
	}
}

func (d *Driver) Scene() *Scene { return d.scene }

// SimTime is the total simulated time; paused frames do not add to it.
func (d *Driver) SimTime() float64 { return d.time }

// Frame runs one frame stamped with the driver's clock.
func (d *Driver) Frame() Frame {
	return d.FrameAt(d.clock.Now())
}

// FrameAt runs one frame stamped with now. The timer advances even while
// paused so resuming never produces a catch-up step.
func (d *Driver) FrameAt(now time.Time) Frame {
	bounds := d.bounds.Bounds()
	dt := d.timer.Delta(now)

	f := Frame{
		Bounds: bounds,
		Paused: d.scene.Paused,
		Index:  d.frames,
	}

	if !d.scene.Paused {
		f.Impact = physics.Step(&d.scene.Ball, d.scene.World, dt, bounds)
		f.Dt = dt
		d.time += dt
	}
	d.frames++

	f.Ball = d.scene.Ball
	f.World = d.scene.World
	f.Time = d.time

	for _, obs := range d.observers {
		obs.OnFrame(f)
	}
	if d.presenter != nil {
		d.presenter.Present(f)
	}
	return f
}

// Run executes a frame for every timestamp received on ticks until ctx
// is done or ticks is closed. Frames run to completion one at a time.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			d.FrameAt(now)
		}
	}
}
