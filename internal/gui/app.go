package gui

import (
	"fmt"
	"log"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/bounce/internal/audio"
	"github.com/san-kum/bounce/internal/input"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Keys maps raylib key codes to the input handler's key names.
var keys = map[int32]string{
	rl.KeyR:     input.KeyReset,
	rl.KeyP:     input.KeyPause,
	rl.KeyUp:    input.KeyUp,
	rl.KeyDown:  input.KeyDown,
	rl.KeyLeft:  input.KeyLeft,
	rl.KeyRight: input.KeyRight,

	rl.KeyLeftBracket:  input.KeyPrevParam,
	rl.KeyRightBracket: input.KeyNextParam,
	rl.KeyMinus:        input.KeyParamDown,
	rl.KeyEqual:        input.KeyParamUp,
}

type Options struct {
	Width, Height int
	FPS           int
	MaxDt         float64
	Sound         bool
	Rand          physics.Rand
}

type App struct {
	Scene   *sim.Scene
	Surface *render.Surface
	Handler *input.Handler
	Driver  *sim.Driver
	Ripples *render.Ripples
	Metrics []metrics.Metric
	Font    rl.Font

	// Audio
	Audio *audio.Processor

	ShowStats bool
	frame     sim.Frame
}

// initWindow opens a resizable window whose framebuffer follows the
// monitor's content scale.
func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), "bounce")
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when the system has it and falls back
// to raylib's built-in font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, fontRunes())
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// fontRunes is printable ASCII plus the superscript used by the HUD.
func fontRunes() []rune {
	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '²')
}

// NewApp wires the simulation around scene. The window must already be
// open.
func NewApp(scene *sim.Scene, opts Options) *App {
	surface := render.NewSurface(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()), scaleDPI())
	driver := sim.New(scene, sim.SystemClock{}, surface, nil)
	driver.SetMaxDt(opts.MaxDt)

	app := &App{
		Scene:   scene,
		Surface: surface,
		Handler: input.NewHandler(scene, surface, opts.Rand),
		Driver:  driver,
		Ripples: render.NewRipples(metrics.DefaultBounceSpeed),
		Metrics: metrics.Default(),
		Font:    loadFont(),
	}
	for _, m := range app.Metrics {
		driver.AddObserver(m)
	}
	driver.AddObserver(app.Ripples)

	if opts.Sound {
		proc := audio.NewProcessor()
		if err := proc.Start(); err != nil {
			log.Printf("gui: continuing without sound: %v", err)
		} else {
			app.Audio = proc
			driver.AddObserver(proc)
		}
	}
	return app
}

// Run opens the window and blocks until it is closed.
func Run(scene *sim.Scene, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	initWindow(opts)
	defer rl.CloseWindow()

	app := NewApp(scene, opts)
	defer app.Close()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
}

// Update applies pending window and input events, then runs one frame.
// Events are handled before the frame so they land in the same tick,
// as they would between two animation frames.
func (a *App) Update() {
	if rl.IsWindowResized() || a.dpiChanged() {
		a.resize()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		x, y := float64(pos.X), float64(pos.Y)
		if rl.GetRenderWidth() != rl.GetScreenWidth() {
			// cursor reported in framebuffer pixels
			a.Handler.ClickDevice(x, y)
		} else {
			a.Handler.Click(x, y)
		}
	}
	for code, name := range keys {
		if rl.IsKeyPressed(code) || rl.IsKeyPressedRepeat(code) {
			if a.Handler.Press(name) == input.ActionReset {
				for _, m := range a.Metrics {
					m.Reset()
				}
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.ShowStats = !a.ShowStats
	}

	f := a.Driver.Frame()
	a.Ripples.Update(float32(f.Dt))
	a.frame = f
}

func (a *App) resize() {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	if a.Surface.Resize(w, h, scaleDPI()) {
		dw, dh := a.Surface.DeviceSize()
		log.Printf("gui: surface %.0fx%.0f logical, %dx%d device", w, h, dw, dh)
	}
}

func (a *App) dpiChanged() bool {
	return math.Max(1, math.Floor(scaleDPI())) != a.Surface.Scale()
}

// scaleDPI is the monitor content scale; raylib reports the same factor
// on both axes.
func scaleDPI() float64 {
	return float64(rl.GetWindowScaleDPI().X)
}
