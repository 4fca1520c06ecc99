package render

import (
	"math"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	RippleDuration = 0.45
	RippleMaxAlpha = 0.6
	rippleFullSpd  = 1500.0
)

// Ring is one expanding impact ripple, ready to stroke.
type Ring struct {
	X, Y   float64
	Radius float64
	Color  Color
}

type ripple struct {
	x, y   float64
	radius *gween.Tween
	alpha  *gween.Tween
	r, a   float32
}

// Ripples spawns a ring where the ball hits a wall and eases it outwards
// while it fades. It is a sim.Observer; call Update with the frame dt so
// rings freeze with the simulation while paused.
type Ripples struct {
	MinSpeed float64
	Color    Color
	active   []*ripple
}

func NewRipples(minSpeed float64) *Ripples {
	return &Ripples{MinSpeed: minSpeed, Color: Color{R: 180, G: 220, B: 255, A: 1}}
}

func (r *Ripples) OnFrame(f sim.Frame) {
	imp := f.Impact
	if imp.Contact == 0 || imp.Speed < r.MinSpeed {
		return
	}
	b := f.Ball
	strength := math.Min(imp.Speed/rippleFullSpd, 1)
	grow := float32(b.R * (1 + 2*strength))

	spawn := func(x, y float64) {
		r.active = append(r.active, &ripple{
			x:      x,
			y:      y,
			radius: gween.New(float32(b.R)*0.5, grow, RippleDuration, ease.OutCubic),
			alpha:  gween.New(float32(RippleMaxAlpha*strength), 0, RippleDuration, ease.InQuad),
			r:      float32(b.R) * 0.5,
			a:      float32(RippleMaxAlpha * strength),
		})
	}
	if imp.Contact.Has(physics.ContactFloor) {
		spawn(b.X, f.Bounds.H)
	}
	if imp.Contact.Has(physics.ContactCeiling) {
		spawn(b.X, 0)
	}
	if imp.Contact.Has(physics.ContactLeft) {
		spawn(0, b.Y)
	}
	if imp.Contact.Has(physics.ContactRight) {
		spawn(f.Bounds.W, b.Y)
	}
}

// Update advances every ring by dt seconds and drops finished ones.
func (r *Ripples) Update(dt float32) {
	live := r.active[:0]
	for _, rp := range r.active {
		var done bool
		rp.r, _ = rp.radius.Update(dt)
		rp.a, done = rp.alpha.Update(dt)
		if !done {
			live = append(live, rp)
		}
	}
	r.active = live
}

func (r *Ripples) Rings() []Ring {
	out := make([]Ring, len(r.active))
	for i, rp := range r.active {
		c := r.Color
		c.A = float64(rp.a)
		out[i] = Ring{X: rp.x, Y: rp.y, Radius: float64(rp.r), Color: c}
	}
	return out
}

func (r *Ripples) Len() int { return len(r.active) }
