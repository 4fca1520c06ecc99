package dynamo

// Configurable exposes named scalar parameters for live editing.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Range is a closed interval used to clamp user-adjustable parameters.
type Range struct {
	Min, Max float64
}

func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
