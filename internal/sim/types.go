package sim

import (
	"github.com/san-kum/bounce/internal/physics"
)

// Scene is the mutable state shared by the frame driver and the input
// handlers. Both run on the same goroutine in every front end.
type Scene struct {
	Ball   physics.Ball
	World  physics.World
	Paused bool
}

func NewScene(ball physics.Ball, world physics.World) *Scene {
	return &Scene{Ball: ball, World: world}
}

func DefaultScene() *Scene {
	return NewScene(*physics.NewBall(), physics.DefaultWorld())
}

func (s *Scene) TogglePause() { s.Paused = !s.Paused }

// Frame is an immutable snapshot handed to presenters and observers.
type Frame struct {
	Ball   physics.Ball
	World  physics.World
	Bounds physics.Bounds
	Paused bool
	Impact physics.Impact
	Dt     float64 // seconds integrated this frame, 0 when paused
	Time   float64 // accumulated simulated seconds
	Index  int
}

type BoundsSource interface {
	Bounds() physics.Bounds
}

type BoundsFunc func() physics.Bounds

func (f BoundsFunc) Bounds() physics.Bounds { return f() }

// FixedBounds is a BoundsSource for headless runs.
type FixedBounds physics.Bounds

func (b FixedBounds) Bounds() physics.Bounds { return physics.Bounds(b) }

type Presenter interface {
	Present(f Frame)
}

type PresenterFunc func(f Frame)

func (p PresenterFunc) Present(f Frame) { p(f) }

type Observer interface {
	OnFrame(f Frame)
}
