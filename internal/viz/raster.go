package viz

import (
	"math"

	"github.com/san-kum/bounce/internal/render"
)

// DefaultDotScale is how many logical pixels one braille dot covers.
const DefaultDotScale = 4.0

// Paint rasterizes a draw list onto c. scale is logical pixels per dot.
func Paint(c *Canvas, dl render.DrawList, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	dot := func(v float64) int { return int(math.Floor(v / scale)) }

	c.Clear()

	c.Pen = LayerGrid
	for _, l := range dl.Grid {
		c.DrawLine(dot(l.X0), dot(l.Y0), dot(l.X1), dot(l.Y1), 3)
	}

	// half-tone for the translucent shadow
	c.Pen = LayerShadow
	s := dl.Shadow
	c.FillEllipse(s.CX/scale, s.CY/scale, s.RX/scale, s.RY/scale, func(x, y int) bool {
		return (x+y)%2 == 0
	})

	c.Pen = LayerRing
	for _, r := range dl.Rings {
		stroke(c, r.X/scale, r.Y/scale, r.Radius/scale)
	}

	// leave the specular highlight unlit
	c.Pen = LayerBall
	b := dl.Ball
	g := b.Fill
	c.FillEllipse(b.CX/scale, b.CY/scale, b.R/scale, b.R/scale, func(x, y int) bool {
		lx, ly := (float64(x)+0.5)*scale, (float64(y)+0.5)*scale
		return math.Hypot(lx-g.X0, ly-g.Y0) > g.R0
	})

	c.Pen = LayerText
	row := -1
	for _, t := range dl.HUD {
		r := dot(t.Y-t.Size) / 4
		if r <= row {
			r = row + 1
		}
		row = r
		c.Text(dot(t.X)/2, row, t.Value)
	}
}

// stroke outlines a circle about one dot thick.
func stroke(c *Canvas, cx, cy, r float64) {
	inner := math.Max(r-1, 0)
	c.FillEllipse(cx, cy, r, r, func(x, y int) bool {
		return math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) >= inner
	})
}
