package render

import (
	"math"

	"github.com/san-kum/bounce/internal/physics"
)

// Surface maps a display area measured in logical (CSS) pixels onto a
// backing store of device pixels. Drawing code works in logical units
// and scales by Scale().
type Surface struct {
	displayW, displayH int
	dpr                int
	deviceW, deviceH   int
}

func NewSurface(w, h, ratio float64) *Surface {
	s := &Surface{}
	s.Resize(w, h, ratio)
	return s
}

// Resize recomputes the mapping and reports whether the backing store
// size changed. Fractional ratios round down and never go below 1.
func (s *Surface) Resize(w, h, ratio float64) bool {
	dpr := int(math.Floor(ratio))
	if dpr < 1 {
		dpr = 1
	}
	dw, dh := int(math.Floor(w)), int(math.Floor(h))
	if dw < 0 {
		dw = 0
	}
	if dh < 0 {
		dh = 0
	}

	s.displayW, s.displayH, s.dpr = dw, dh, dpr

	devW, devH := dw*dpr, dh*dpr
	if devW == s.deviceW && devH == s.deviceH {
		return false
	}
	s.deviceW, s.deviceH = devW, devH
	return true
}

// Bounds is the logical size; Surface doubles as a sim.BoundsSource.
func (s *Surface) Bounds() physics.Bounds {
	return physics.Bounds{W: float64(s.displayW), H: float64(s.displayH)}
}

func (s *Surface) Scale() float64 { return float64(s.dpr) }

func (s *Surface) DeviceSize() (int, int) { return s.deviceW, s.deviceH }

// ToLogical converts a device-pixel position (e.g. a raw pointer event)
// into logical coordinates.
func (s *Surface) ToLogical(x, y float64) (float64, float64) {
	return x / float64(s.dpr), y / float64(s.dpr)
}
