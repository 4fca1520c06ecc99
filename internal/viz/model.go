package viz

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bounce/internal/input"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

const (
	panelWidth      = 34
	historyCapacity = 120

	defaultCols = 80
	defaultRows = 24
)

const (
	gaugeSpeed = iota
	gaugeEnergy
	gaugeCount
)

type TickMsg time.Time

type Options struct {
	FPS      int
	MaxDt    float64
	Theme    string
	DotScale float64
	Rand     physics.Rand
}

// Model is the Bubble Tea model for the terminal front end.
type Model struct {
	driver  *sim.Driver
	handler *input.Handler
	metrics []metrics.Metric
	ripples *render.Ripples
	canvas  *Canvas
	frame   sim.Frame

	theme   Theme
	styles  styles
	gauges  *gauges
	heights []float64
	peakE   float64

	fps           int
	scale         float64
	width, height int
	lastAction    input.Action
	showHelp      bool
}

// NewModel wires a driver, input handler and metrics around scene.
func NewModel(scene *sim.Scene, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.DotScale <= 0 {
		opts.DotScale = DefaultDotScale
	}
	theme, ok := GetTheme(opts.Theme)
	if !ok && opts.Theme != "" {
		log.Printf("viz: unknown theme %q, using %s", opts.Theme, theme.Name)
	}

	surface := render.NewSurface(0, 0, 1)
	handler := input.NewHandler(scene, surface, opts.Rand)
	driver := sim.New(scene, sim.SystemClock{}, surface, nil)
	driver.SetMaxDt(opts.MaxDt)

	ms := metrics.Default()
	for _, mt := range ms {
		driver.AddObserver(mt)
	}
	ripples := render.NewRipples(metrics.DefaultBounceSpeed)
	driver.AddObserver(ripples)

	m := Model{
		driver:  driver,
		handler: handler,
		metrics: ms,
		ripples: ripples,
		theme:   theme,
		styles:  newStyles(theme),
		gauges:  newGauges(opts.FPS, gaugeCount),
		heights: make([]float64, 0, historyCapacity),
		fps:     opts.FPS,
		scale:   opts.DotScale,
	}
	m.resize(defaultCols, defaultRows)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellToLogical(msg.X, msg.Y); ok {
				m.handler.Click(x, y)
			}
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.setTheme(NextTheme(m.theme.Name))
		case "?":
			m.showHelp = !m.showHelp
		default:
			m.lastAction = m.handler.Press(msg.String())
			if m.lastAction == input.ActionReset {
				m.reset()
			}
		}
	case TickMsg:
		m.frame = m.driver.FrameAt(time.Time(msg))
		m.record()
		m.ripples.Update(float32(m.frame.Dt))

		dl := render.Plan(m.frame)
		dl.Rings = m.ripples.Rings()
		Paint(m.canvas, dl, m.scale)
		return m, m.tick()
	}
	return m, nil
}

// resize fits the canvas to the terminal left of the stats panel and
// maps every dot to scale logical pixels.
func (m *Model) resize(cols, rows int) {
	m.width, m.height = cols, rows
	cw := max(cols-panelWidth-1, 8)
	ch := max(rows-1, 4)
	m.canvas = NewCanvas(cw, ch)

	dw, dh := m.canvas.Dots()
	if m.handler.Resize(float64(dw)*m.scale, float64(dh)*m.scale, 1) {
		b := m.handler.Surface().Bounds()
		log.Printf("viz: resized to %dx%d cells (%.0fx%.0f px)", cw, ch, b.W, b.H)
	}
}

// cellToLogical maps a terminal cell to the logical pixel at its centre.
func (m *Model) cellToLogical(col, row int) (float64, float64, bool) {
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return 0, 0, false
	}
	return (float64(col*2) + 1) * m.scale, (float64(row*4) + 2) * m.scale, true
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
}

func (m *Model) reset() {
	for _, mt := range m.metrics {
		mt.Reset()
	}
	m.heights = m.heights[:0]
	m.peakE = 0
	m.gauges.snap(0, 0)
}

func (m *Model) record() {
	f := m.frame
	m.gauges.step(gaugeSpeed, f.Ball.Speed())
	e := m.gauges.step(gaugeEnergy, f.Ball.Energy(f.World, f.Bounds))
	m.peakE = math.Max(m.peakE, e)

	if f.Dt == 0 {
		return
	}
	m.heights = append(m.heights, f.Bounds.H-f.Ball.R-f.Ball.Y)
	if len(m.heights) > historyCapacity {
		m.heights = m.heights[1:]
	}
}

// View renders the canvas with the stats panel on its right.
func (m Model) View() string {
	canvas := strings.TrimSuffix(m.canvas.Render(m.styles.layers), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.panel())
}

func (m Model) panel() string {
	st := m.styles
	f := m.frame
	stats := metrics.Snapshot(m.metrics)
	barWidth := panelWidth - 16

	var s strings.Builder
	s.WriteString(st.header.Render("BOUNCE") + "\n")
	if f.Paused {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	} else {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", f.Time))
	row("Gravity", fmt.Sprintf("%.0f px/s²", f.World.Gravity))
	row("Restitution", fmt.Sprintf("%.2f", f.World.Restitution))
	row("Bounces", fmt.Sprintf("%.0f", stats["bounces"]))
	if settle := stats["settle_time"]; settle >= 0 {
		row("Settled", fmt.Sprintf("%.2fs", settle))
	}
	s.WriteString("\n")

	speed := m.gauges.value(gaugeSpeed)
	maxSpeed := math.Sqrt(2 * f.World.Gravity * math.Max(f.Bounds.H, 1))
	row("Speed", fmt.Sprintf("%.0f px/s", speed))
	s.WriteString(st.ProgressBar(speed/maxSpeed, barWidth) + "\n")

	energy := m.gauges.value(gaugeEnergy)
	row("Energy", fmt.Sprintf("%.0f", energy))
	if m.peakE > 0 {
		s.WriteString(st.ProgressBar(energy/m.peakE, barWidth) + "\n")
	}
	s.WriteString("\n")

	s.WriteString(st.label.Render("Height") + "\n")
	s.WriteString(st.Sparkline(m.heights, 0, f.Bounds.H-2*f.Ball.R, barWidth) + "\n\n")

	row("Edit", m.handler.Params().String())
	s.WriteString("\n")

	if m.lastAction != input.ActionNone {
		s.WriteString(st.subtle.Render("last: "+m.lastAction.String()) + "\n")
	}
	s.WriteString(st.Separator(panelWidth-4) + "\n")
	if m.showHelp {
		s.WriteString(st.keyHint.Render(strings.Join([]string{
			"P        pause/resume",
			"R        reset ball",
			"↑/↓      gravity ±100",
			"←/→      restitution ±0.02",
			"[ ]      select parameter",
			"- =      adjust parameter",
			"click    move + kick",
			"T        theme (" + m.theme.Name + ")",
			"?        hide help",
			"Q        quit",
		}, "\n")))
	} else {
		s.WriteString(st.keyHint.Render("P:Pause R:Reset Q:Quit\n↑↓:Gravity ←→:Bounce\n[ ]:Param -=:Adjust ?:Help"))
	}
	return st.panel.Render(s.String())
}
