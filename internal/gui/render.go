package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/render"
)

// gradientSteps is how many circles approximate the ball's radial fill.
const gradientSteps = 24

var (
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

func color(c render.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(r, g, b, a)
}

func (a *App) Draw() {
	dl := render.Plan(a.frame)
	dl.Rings = a.Ripples.Rings()

	rl.BeginDrawing()
	a.drawList(dl)
	if a.ShowStats {
		a.drawStats()
	}
	rl.EndDrawing()
}

// drawList paints in DrawList order.
func (a *App) drawList(dl render.DrawList) {
	rl.ClearBackground(color(dl.Background))

	grid := color(dl.GridColor)
	for _, l := range dl.Grid {
		rl.DrawLineV(rl.NewVector2(float32(l.X0), float32(l.Y0)), rl.NewVector2(float32(l.X1), float32(l.Y1)), grid)
	}

	s := dl.Shadow
	rl.DrawEllipse(int32(s.CX), int32(s.CY), float32(s.RX), float32(s.RY), color(s.Fill))

	for _, r := range dl.Rings {
		rl.DrawRing(rl.NewVector2(float32(r.X), float32(r.Y)), float32(r.Radius)-1.5, float32(r.Radius), 0, 360, 48, color(r.Color))
	}

	drawDisc(dl.Ball)

	for _, t := range dl.HUD {
		// Y is a baseline; raylib places text by its top edge
		a.drawText(t.Value, t.X, t.Y-t.Size, t.Size, color(t.Color))
	}
}

// drawDisc fills the ball with its two-circle gradient by painting the
// interpolated circles from the outer one inwards. Each circle is shrunk
// to stay inside the ball.
func drawDisc(d render.Disc) {
	g := d.Fill
	for i := gradientSteps; i >= 0; i-- {
		t := float64(i) / gradientSteps
		cx := g.X0 + (g.X1-g.X0)*t
		cy := g.Y0 + (g.Y1-g.Y0)*t
		r := g.R0 + (g.R1-g.R0)*t
		r = math.Min(r, d.R-math.Hypot(cx-d.CX, cy-d.CY))
		if r <= 0 {
			continue
		}
		rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(r), color(g.At(t)))
	}
}

func (a *App) drawStats() {
	stats := metrics.Snapshot(a.Metrics)
	f := a.frame
	lines := []string{
		fmt.Sprintf("time: %.2fs", f.Time),
		fmt.Sprintf("speed: %.0f px/s", f.Ball.Speed()),
		fmt.Sprintf("bounces: %.0f", stats["bounces"]),
		fmt.Sprintf("peak: %.0f px/s", stats["peak_speed"]),
		fmt.Sprintf("edit: %s", a.Handler.Params()),
		fmt.Sprintf("%d FPS", rl.GetFPS()),
	}
	if a.Audio != nil {
		lines = append(lines, fmt.Sprintf("voices: %d", a.Audio.Voices()))
	}

	x := f.Bounds.W - 180
	for i, line := range lines {
		a.drawText(line, x, 12+float64(i)*16, 12, ColText)
	}
	a.drawText("[P] PAUSE  [R] RESET  [ ] PARAM  [-/=] ADJUST  [TAB] STATS  [Q] QUIT", 12, f.Bounds.H-24, 12, ColTextDim)
}

func (a *App) drawText(text string, x, y, size float64, c rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
}
