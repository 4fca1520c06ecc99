package physics

import (
	"github.com/san-kum/bounce/internal/dynamo"
)

const (
	DefaultGravity     = 1200.0
	DefaultRestitution = 0.82
	DefaultFriction    = 0.995
	DefaultDrag        = 0.999

	GravityStep     = 100.0
	RestitutionStep = 0.02
	FrictionStep    = 0.005
	DragStep        = 0.0005
)

var (
	GravityRange     = dynamo.Range{Min: 100, Max: 4000}
	RestitutionRange = dynamo.Range{Min: 0.1, Max: 0.99}

	// Friction and Drag are multiplicative per-step factors; values
	// above 1 would inject energy.
	FactorRange = dynamo.Range{Min: 0, Max: 1}
)

// World holds the scene-wide coefficients read on every step.
type World struct {
	Gravity     float64 // px/s²
	Restitution float64 // fraction of speed kept per bounce
	Friction    float64 // vx factor applied on floor contact
	Drag        float64 // vx factor applied every step
}

var _ dynamo.Configurable = (*World)(nil)

func DefaultWorld() World {
	return World{
		Gravity:     DefaultGravity,
		Restitution: DefaultRestitution,
		Friction:    DefaultFriction,
		Drag:        DefaultDrag,
	}
}

func (w *World) AdjustGravity(delta float64) {
	w.Gravity = GravityRange.Clamp(w.Gravity + delta)
}

func (w *World) AdjustRestitution(delta float64) {
	w.Restitution = RestitutionRange.Clamp(w.Restitution + delta)
}

func (w *World) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity":     w.Gravity,
		"restitution": w.Restitution,
		"friction":    w.Friction,
		"drag":        w.Drag,
	}
}

// SetParam assigns a clamped value; out of range input is never an error.
func (w *World) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		w.Gravity = GravityRange.Clamp(value)
	case "restitution":
		w.Restitution = RestitutionRange.Clamp(value)
	case "friction":
		w.Friction = FactorRange.Clamp(value)
	case "drag":
		w.Drag = FactorRange.Clamp(value)
	default:
		return &dynamo.ParamError{Name: name, Value: value, Wrapped: dynamo.ErrUnknownParam}
	}
	return nil
}

// Validate reports the first coefficient outside its range.
func (w World) Validate() error {
	switch {
	case !GravityRange.Contains(w.Gravity):
		return dynamo.NewParamError("gravity", w.Gravity)
	case !RestitutionRange.Contains(w.Restitution):
		return dynamo.NewParamError("restitution", w.Restitution)
	case !FactorRange.Contains(w.Friction):
		return dynamo.NewParamError("friction", w.Friction)
	case !FactorRange.Contains(w.Drag):
		return dynamo.NewParamError("drag", w.Drag)
	}
	return nil
}
