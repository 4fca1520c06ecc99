package render

import (
	"fmt"
	"math"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

const (
	GridSpacing = 40.0
	GridOffset  = 0.5

	ShadowMaxWidth = 80.0
	ShadowMinWidth = 20.0
	ShadowAspect   = 0.22
	ShadowFloorGap = 6.0

	// shadow narrows by this many px per px/s of vertical speed
	ShadowSpeedFactor = 0.03

	// grid lines are stroked at GridStrokeAlpha inside a layer drawn at
	// GridLayerAlpha
	GridStrokeAlpha = 0.10
	GridLayerAlpha  = 0.25

	HUDX        = 12.0
	HUDY        = 20.0
	HUDLineStep = 16.0
	HUDSize     = 12.0
)

var (
	Background  = Color{R: 11, G: 15, B: 20, A: 1}
	GridColor   = Color{R: 255, G: 255, B: 255, A: GridStrokeAlpha * GridLayerAlpha}
	ShadowColor = Color{A: 0.35}
	HUDColor    = Color{R: 255, G: 255, B: 255, A: 0.7}

	BallStops = []Stop{
		{Offset: 0, Color: Color{R: 255, G: 255, B: 255, A: 0.95}},
		{Offset: 0.2, Color: Color{R: 180, G: 220, B: 255, A: 0.9}},
		{Offset: 1, Color: Color{R: 40, G: 120, B: 255, A: 0.9}},
	}
)

// Color is an sRGB colour with CSS-style alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// RGBA returns 8-bit channels with alpha scaled to 0..255.
func (c Color) RGBA() (r, g, b, a uint8) {
	return c.R, c.G, c.B, uint8(math.Round(clamp(c.A, 0, 1) * 255))
}

func (c Color) Lerp(o Color, t float64) Color {
	t = clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Color{
		R: mix(c.R, o.R),
		G: mix(c.G, o.G),
		B: mix(c.B, o.B),
		A: c.A + (o.A-c.A)*t,
	}
}

type Line struct {
	X0, Y0, X1, Y1 float64
}

type Ellipse struct {
	CX, CY, RX, RY float64
	Fill           Color
}

type Stop struct {
	Offset float64
	Color  Color
}

// RadialGradient runs from the circle (X0,Y0,R0) to (X1,Y1,R1).
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// ColorAt samples the gradient at a point. The position along the
// gradient is the distance from the inner centre mapped from R0 to R1,
// which matches a two-circle gradient closely when the inner circle sits
// inside the outer one.
func (g RadialGradient) ColorAt(x, y float64) Color {
	span := g.R1 - g.R0
	if span <= 0 || len(g.Stops) == 0 {
		if len(g.Stops) == 0 {
			return Color{}
		}
		return g.Stops[len(g.Stops)-1].Color
	}
	d := math.Hypot(x-g.X0, y-g.Y0)
	return g.At((d - g.R0) / span)
}

// At returns the colour at offset t in [0, 1].
func (g RadialGradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	t = clamp(t, 0, 1)
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t <= b.Offset {
			if b.Offset == a.Offset {
				return b.Color
			}
			return a.Color.Lerp(b.Color, (t-a.Offset)/(b.Offset-a.Offset))
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

type Disc struct {
	CX, CY, R float64
	Fill      RadialGradient
}

type Text struct {
	X, Y  float64
	Size  float64
	Color Color
	Value string
}

// DrawList is everything a backend needs to paint one frame, in paint
// order: background, grid, shadow, rings, ball, HUD. Plan leaves Rings
// empty; front ends that run Ripples fill it.
type DrawList struct {
	Bounds     physics.Bounds
	Background Color
	Grid       []Line
	GridColor  Color
	Shadow     Ellipse
	Rings      []Ring
	Ball       Disc
	HUD        []Text
}

// Plan maps a frame to draw commands. It does not touch the frame.
func Plan(f sim.Frame) DrawList {
	b := f.Ball
	hud := HUDLines(f)

	dl := DrawList{
		Bounds:     f.Bounds,
		Background: Background,
		Grid:       GridLines(f.Bounds),
		GridColor:  GridColor,
		Shadow:     ShadowFor(b, f.Bounds),
		Ball: Disc{
			CX: b.X, CY: b.Y, R: b.R,
			Fill: BallGradient(b),
		},
		HUD: make([]Text, len(hud)),
	}
	for i, line := range hud {
		dl.HUD[i] = Text{
			X:     HUDX,
			Y:     HUDY + float64(i)*HUDLineStep,
			Size:  HUDSize,
			Color: HUDColor,
			Value: line,
		}
	}
	return dl
}

// GridLines returns vertical then horizontal lines every GridSpacing px,
// offset by half a pixel so one-pixel strokes stay crisp.
func GridLines(bounds physics.Bounds) []Line {
	var lines []Line
	for x := GridOffset; x < bounds.W; x += GridSpacing {
		lines = append(lines, Line{X0: x, Y0: 0, X1: x, Y1: bounds.H})
	}
	for y := GridOffset; y < bounds.H; y += GridSpacing {
		lines = append(lines, Line{X0: 0, Y0: y, X1: bounds.W, Y1: y})
	}
	return lines
}

// ShadowWidth shrinks as vertical speed grows, hinting at height.
func ShadowWidth(vy float64) float64 {
	return clamp(ShadowMaxWidth-math.Abs(vy)*ShadowSpeedFactor, ShadowMinWidth, ShadowMaxWidth)
}

func ShadowFor(b physics.Ball, bounds physics.Bounds) Ellipse {
	w := ShadowWidth(b.VY)
	return Ellipse{
		CX:   b.X,
		CY:   bounds.H - ShadowFloorGap,
		RX:   w,
		RY:   w * ShadowAspect,
		Fill: ShadowColor,
	}
}

// BallGradient is the off-centre highlight that makes the ball look shiny.
func BallGradient(b physics.Ball) RadialGradient {
	return RadialGradient{
		X0: b.X - b.R*0.35, Y0: b.Y - b.R*0.35, R0: b.R * 0.25,
		X1: b.X, Y1: b.Y, R1: b.R * 1.2,
		Stops: BallStops,
	}
}

func HUDLines(f sim.Frame) []string {
	paused := "no"
	if f.Paused {
		paused = "yes"
	}
	return []string{
		fmt.Sprintf("gravity: %.0f px/s²", f.World.Gravity),
		fmt.Sprintf("restitution: %.2f", f.World.Restitution),
		fmt.Sprintf("paused: %s", paused),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
