package physics

import "math"

// SettleSpeed is the post-bounce vertical speed below which a floor
// bounce is zeroed to stop endless micro-bouncing.
const SettleSpeed = 18.0

// Contact records which walls the ball touched during a step.
type Contact uint8

const (
	ContactLeft Contact = 1 << iota
	ContactRight
	ContactCeiling
	ContactFloor
)

func (c Contact) Has(flag Contact) bool { return c&flag != 0 }

func (c Contact) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, f := range []struct {
		flag Contact
		name string
	}{
		{ContactLeft, "left"},
		{ContactRight, "right"},
		{ContactCeiling, "ceiling"},
		{ContactFloor, "floor"},
	} {
		if c.Has(f.flag) {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

// Impact describes the outcome of one Step.
type Impact struct {
	Contact Contact
	// Speed is the magnitude of the velocity component that was
	// reflected, taken before restitution is applied. Largest axis wins
	// on corner hits.
	Speed float64
}

// Step advances b by dt seconds inside bounds. Integration is
// semi-implicit Euler; collisions are resolved per axis by clamping the
// position back onto the wall and reflecting the matching velocity
// component. Only the floor applies friction and the settle rule.
//
// There is no continuous collision detection: a huge dt can carry the
// ball past a wall before it is clamped back. Callers bound dt instead.
func Step(b *Ball, w World, dt float64, bounds Bounds) Impact {
	var hit Impact

	b.VY += w.Gravity * dt

	b.X += b.VX * dt
	b.Y += b.VY * dt

	left, right := b.R, bounds.W-b.R
	top, bottom := b.R, bounds.H-b.R

	if b.X < left {
		hit.record(ContactLeft, b.VX)
		b.X = left
		b.VX = math.Abs(b.VX) * w.Restitution
	} else if b.X > right {
		hit.record(ContactRight, b.VX)
		b.X = right
		b.VX = -math.Abs(b.VX) * w.Restitution
	}

	if b.Y < top {
		hit.record(ContactCeiling, b.VY)
		b.Y = top
		b.VY = math.Abs(b.VY) * w.Restitution
	} else if b.Y > bottom {
		hit.record(ContactFloor, b.VY)
		b.Y = bottom
		b.VY = -math.Abs(b.VY) * w.Restitution

		b.VX *= w.Friction
		if math.Abs(b.VY) < SettleSpeed {
			b.VY = 0
		}
	}

	b.VX *= w.Drag

	return hit
}

func (i *Impact) record(c Contact, v float64) {
	i.Contact |= c
	if s := math.Abs(v); s > i.Speed {
		i.Speed = s
	}
}
