package render

import (
	"math"
	"testing"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

func testFrame() sim.Frame {
	return sim.Frame{
		Ball:   physics.Ball{X: 200, Y: 180, VX: 280, VY: -40, R: 18},
		World:  physics.DefaultWorld(),
		Bounds: physics.Bounds{W: 800, H: 600},
	}
}

func TestPlanHUD(t *testing.T) {
	f := testFrame()
	dl := Plan(f)

	want := []string{
		"gravity: 1200 px/s²",
		"restitution: 0.82",
		"paused: no",
	}
	if len(dl.HUD) != len(want) {
		t.Fatalf("expected %d HUD lines, got %d", len(want), len(dl.HUD))
	}
	for i, line := range want {
		if dl.HUD[i].Value != line {
			t.Errorf("HUD[%d] = %q, want %q", i, dl.HUD[i].Value, line)
		}
		if dl.HUD[i].X != 12 || dl.HUD[i].Y != 20+16*float64(i) {
			t.Errorf("HUD[%d] at (%v, %v)", i, dl.HUD[i].X, dl.HUD[i].Y)
		}
	}

	f.Paused = true
	if got := HUDLines(f)[2]; got != "paused: yes" {
		t.Errorf("paused line = %q", got)
	}
}

func TestGridIsFaint(t *testing.T) {
	dl := Plan(testFrame())
	if math.Abs(dl.GridColor.A-0.025) > 1e-12 {
		t.Errorf("grid alpha = %v, want 0.025", dl.GridColor.A)
	}
	if _, _, _, a := dl.GridColor.RGBA(); a != 6 {
		t.Errorf("grid 8-bit alpha = %d, want 6", a)
	}
}

func TestPlanDoesNotMutate(t *testing.T) {
	f := testFrame()
	before := f
	Plan(f)
	if f != before {
		t.Error("Plan mutated its frame")
	}
}

func TestShadowWidth(t *testing.T) {
	tests := []struct {
		vy, want float64
	}{
		{0, 80},
		{1000, 50},
		{-1000, 50},
		{2000, 20},
		{5000, 20},
	}
	for _, tt := range tests {
		if got := ShadowWidth(tt.vy); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ShadowWidth(%v) = %v, want %v", tt.vy, got, tt.want)
		}
	}

	e := ShadowFor(physics.Ball{X: 300, VY: 0}, physics.Bounds{W: 800, H: 600})
	if e.CX != 300 || e.CY != 594 {
		t.Errorf("shadow centre = (%v, %v)", e.CX, e.CY)
	}
	if math.Abs(e.RY-80*0.22) > 1e-9 {
		t.Errorf("shadow RY = %v", e.RY)
	}
}

func TestGridLines(t *testing.T) {
	lines := GridLines(physics.Bounds{W: 100, H: 50})
	// x: 0.5, 40.5, 80.5; y: 0.5, 40.5
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[0].X0 != 0.5 || lines[0].Y1 != 50 {
		t.Errorf("first line = %+v", lines[0])
	}
	if lines[4].Y0 != 40.5 || lines[4].X1 != 100 {
		t.Errorf("last line = %+v", lines[4])
	}
}

func TestGradient(t *testing.T) {
	g := BallGradient(physics.Ball{X: 100, Y: 100, R: 20})

	if g.X0 != 93 || g.Y0 != 93 || g.R0 != 5 || g.R1 != 24 {
		t.Errorf("unexpected gradient geometry %+v", g)
	}

	if c := g.At(0); c != BallStops[0].Color {
		t.Errorf("At(0) = %+v", c)
	}
	if c := g.At(1); c != BallStops[2].Color {
		t.Errorf("At(1) = %+v", c)
	}
	if c := g.At(0.2); c != BallStops[1].Color {
		t.Errorf("At(0.2) = %+v", c)
	}

	mid := g.At(0.6)
	if mid.B != 255 || mid.R <= 40 || mid.R >= 180 {
		t.Errorf("At(0.6) = %+v", mid)
	}

	// highlight centre is the brightest point
	if c := g.ColorAt(g.X0, g.Y0); c != BallStops[0].Color {
		t.Errorf("ColorAt(highlight) = %+v", c)
	}
}

func TestColorRGBA(t *testing.T) {
	_, _, _, a := ShadowColor.RGBA()
	if a != 89 {
		t.Errorf("alpha = %d, want 89", a)
	}
}
