package physics

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestStepStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := Bounds{W: 800, H: 600}
	w := DefaultWorld()

	for i := 0; i < 2000; i++ {
		b := &Ball{R: DefaultRadius}
		b.X = b.R + rng.Float64()*(bounds.W-2*b.R)
		b.Y = b.R + rng.Float64()*(bounds.H-2*b.R)
		b.VX = (rng.Float64()*2 - 1) * 5000
		b.VY = (rng.Float64()*2 - 1) * 5000
		dt := rng.Float64() * 0.5

		Step(b, w, dt, bounds)

		if b.X < b.R-eps || b.X > bounds.W-b.R+eps {
			t.Fatalf("x=%.4f escaped [%v, %v] (dt=%v)", b.X, b.R, bounds.W-b.R, dt)
		}
		if b.Y < b.R-eps || b.Y > bounds.H-b.R+eps {
			t.Fatalf("y=%.4f escaped [%v, %v] (dt=%v)", b.Y, b.R, bounds.H-b.R, dt)
		}
	}
}

func TestStepWallReflection(t *testing.T) {
	w := World{Gravity: 0, Restitution: 0.5, Friction: 1, Drag: 1}
	bounds := Bounds{W: 200, H: 200}

	tests := []struct {
		name    string
		ball    Ball
		contact Contact
		wantX   float64
		wantY   float64
		wantVX  float64
		wantVY  float64
	}{
		{"left", Ball{X: 12, Y: 100, VX: -100, R: 10}, ContactLeft, 10, 100, 50, 0},
		{"right", Ball{X: 188, Y: 100, VX: 100, R: 10}, ContactRight, 190, 100, -50, 0},
		{"ceiling", Ball{X: 100, Y: 12, VY: -100, R: 10}, ContactCeiling, 100, 10, 0, 50},
		{"floor", Ball{X: 100, Y: 188, VY: 100, R: 10}, ContactFloor, 100, 190, 0, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			hit := Step(&b, w, 0.1, bounds)

			if hit.Contact != tt.contact {
				t.Errorf("contact = %v, want %v", hit.Contact, tt.contact)
			}
			if hit.Speed != 100 {
				t.Errorf("impact speed = %v, want 100", hit.Speed)
			}
			if math.Abs(b.X-tt.wantX) > eps || math.Abs(b.Y-tt.wantY) > eps {
				t.Errorf("position = (%v, %v), want (%v, %v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if math.Abs(b.VX-tt.wantVX) > eps || math.Abs(b.VY-tt.wantVY) > eps {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestStepFloorFriction(t *testing.T) {
	w := World{Gravity: 0, Restitution: 0.8, Friction: 0.9, Drag: 1}
	bounds := Bounds{W: 400, H: 200}

	b := Ball{X: 100, Y: 185, VX: 100, VY: 200, R: 10}
	Step(&b, w, 0.1, bounds)

	if math.Abs(b.VX-90) > eps {
		t.Errorf("floor contact should damp vx: got %v, want 90", b.VX)
	}
	if math.Abs(b.VY+160) > eps {
		t.Errorf("vy = %v, want -160", b.VY)
	}

	// ceiling contact leaves vx alone
	b = Ball{X: 100, Y: 15, VX: 100, VY: -200, R: 10}
	Step(&b, w, 0.1, bounds)
	if b.VX != 100 {
		t.Errorf("ceiling contact changed vx: %v", b.VX)
	}
}

func TestStepSettleThreshold(t *testing.T) {
	w := World{Gravity: 0, Restitution: 0.5, Friction: 1, Drag: 1}
	bounds := Bounds{W: 400, H: 200}

	tests := []struct {
		vy     float64
		wantVY float64
	}{
		{30, 0},   // 15 after restitution: settles
		{35.9, 0}, // 17.95
		{36, -18}, // exactly the threshold survives
		{100, -50},
	}

	for _, tt := range tests {
		b := Ball{X: 100, Y: 189.99, VY: tt.vy, R: 10}
		Step(&b, w, 0.1, bounds)
		if math.Abs(b.VY-tt.wantVY) > eps {
			t.Errorf("vy_pre=%v: vy = %v, want %v", tt.vy, b.VY, tt.wantVY)
		}
	}
}

func TestStepAirDrag(t *testing.T) {
	w := World{Gravity: 0, Restitution: 1, Friction: 1, Drag: 0.999}
	b := Ball{X: 100, Y: 100, VX: 100, R: 10}

	Step(&b, w, 0.01, Bounds{W: 400, H: 400})

	if math.Abs(b.VX-99.9) > eps {
		t.Errorf("vx = %v, want 99.9", b.VX)
	}
}

func TestStepRestingBallStaysAtRest(t *testing.T) {
	w := World{Gravity: 0, Restitution: 1, Friction: 1, Drag: 1}
	bounds := Bounds{W: 400, H: 300}
	b := Ball{X: 200, Y: 290, R: 10}

	for i := 0; i < 500; i++ {
		Step(&b, w, 1.0/60, bounds)
		if b.VY != 0 {
			t.Fatalf("step %d injected vy=%v", i, b.VY)
		}
	}
	if b.Y != 290 {
		t.Errorf("resting ball drifted to y=%v", b.Y)
	}
}

func TestStepFloorScenario(t *testing.T) {
	w := World{Gravity: 1200, Restitution: 0.82, Friction: DefaultFriction, Drag: DefaultDrag}
	bounds := Bounds{W: 800, H: 600}
	b := Ball{X: 160, Y: 120, VX: 280, VY: -40, R: 18}
	const dt = 0.1

	for i := 0; i < 100; i++ {
		vyPre := b.VY + w.Gravity*dt
		if b.Y+vyPre*dt <= 582 {
			Step(&b, w, dt, bounds)
			continue
		}

		hit := Step(&b, w, dt, bounds)
		if !hit.Contact.Has(ContactFloor) {
			t.Fatalf("expected floor contact, got %v", hit.Contact)
		}
		if b.Y != 582 {
			t.Errorf("y = %v, want 582", b.Y)
		}
		if want := -math.Abs(vyPre) * 0.82; math.Abs(b.VY-want) > 1e-9 {
			t.Errorf("vy = %v, want %v", b.VY, want)
		}
		return
	}
	t.Fatal("ball never reached the floor")
}

func TestContactString(t *testing.T) {
	tests := []struct {
		c    Contact
		want string
	}{
		{0, "none"},
		{ContactFloor, "floor"},
		{ContactLeft | ContactFloor, "left|floor"},
		{ContactRight | ContactCeiling, "right|ceiling"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func BenchmarkStep(b *testing.B) {
	w := DefaultWorld()
	bounds := Bounds{W: 1280, H: 720}
	ball := NewBall()
	for i := 0; i < b.N; i++ {
		Step(ball, w, 1.0/60, bounds)
	}
}
