package viz

import "github.com/charmbracelet/harmonica"

// gauges eases displayed readouts toward their live values so the
// panel does not flicker at every bounce.
type gauges struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newGauges(fps, n int) *gauges {
	return &gauges{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		pos:    make([]float64, n),
		vel:    make([]float64, n),
	}
}

func (g *gauges) step(i int, target float64) float64 {
	p, v := g.spring.Update(g.pos[i], g.vel[i], target)
	g.pos[i] = p
	g.vel[i] = v
	return p
}

func (g *gauges) value(i int) float64 { return g.pos[i] }

// snap jumps every gauge to its target, used on reset.
func (g *gauges) snap(targets ...float64) {
	for i, t := range targets {
		if i < len(g.pos) {
			g.pos[i], g.vel[i] = t, 0
		}
	}
}
