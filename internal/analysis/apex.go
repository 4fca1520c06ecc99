package analysis

import (
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

// apexTracker records the top of each arc that follows a floor bounce.
type apexTracker struct {
	minSpeed float64
	armed    bool
	prevVY   float64
	heights  []float64
}

func newApexTracker(minSpeed float64) *apexTracker {
	return &apexTracker{minSpeed: minSpeed}
}

func (a *apexTracker) OnFrame(f sim.Frame) {
	if f.Dt == 0 {
		return
	}
	b := f.Ball
	if f.Impact.Contact.Has(physics.ContactFloor) && f.Impact.Speed >= a.minSpeed {
		a.armed = true
	} else if a.armed && a.prevVY < 0 && b.VY >= 0 {
		a.heights = append(a.heights, f.Bounds.H-b.R-b.Y)
		a.armed = false
	}
	a.prevVY = b.VY
}

// ApexRatios returns apexes[i+1]/apexes[i], stopping at the first
// non-positive apex.
func ApexRatios(apexes []float64) []float64 {
	if len(apexes) < 2 {
		return nil
	}
	out := make([]float64, 0, len(apexes)-1)
	for i := 1; i < len(apexes); i++ {
		if apexes[i-1] <= 0 {
			break
		}
		out = append(out, apexes[i]/apexes[i-1])
	}
	return out
}
