package physics

import "math"

const (
	DefaultRadius = 18.0

	ResetVX = 280.0
	ResetVY = -40.0

	KickMaxVX = 360.0
	KickMaxVY = 420.0
)

// Bounds is the logical (CSS pixel) viewport the ball lives in.
type Bounds struct {
	W, H float64
}

// Fits reports whether a ball of radius r has room on both axes.
func (b Bounds) Fits(r float64) bool {
	return b.W >= 2*r && b.H >= 2*r
}

// Rand is the single source of randomness in the system. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Ball is the one simulated body. Position is in viewport pixels,
// velocity in px/s.
type Ball struct {
	X, Y   float64
	VX, VY float64
	R      float64
}

func NewBall() *Ball {
	return &Ball{X: 160, Y: 120, VX: ResetVX, VY: ResetVY, R: DefaultRadius}
}

// Reset puts the ball at a fixed spot relative to bounds with the
// launch velocity.
func (b *Ball) Reset(bounds Bounds) {
	b.X = bounds.W * 0.25
	b.Y = bounds.H * 0.3
	b.VX = ResetVX
	b.VY = ResetVY
}

// Kick teleports the ball to (px, py) and gives it a random velocity
// with vx in [-360, 360] and vy in [-420, 0].
func (b *Ball) Kick(px, py float64, rng Rand) {
	b.X = px
	b.Y = py
	b.VX = (rng.Float64()*2 - 1) * KickMaxVX
	b.VY = -rng.Float64() * KickMaxVY
}

func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Energy is mechanical energy per unit mass with the resting floor
// position as zero potential.
func (b *Ball) Energy(w World, bounds Bounds) float64 {
	ke := 0.5 * (b.VX*b.VX + b.VY*b.VY)
	height := (bounds.H - b.R) - b.Y
	return ke + w.Gravity*height
}

// Resting reports whether the ball sits on the floor with no vertical
// motion.
func (b *Ball) Resting(bounds Bounds) bool {
	return b.VY == 0 && b.Y >= bounds.H-b.R
}
