package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bounce/internal/analysis"
	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/export"
	"github.com/san-kum/bounce/internal/gui"
	"github.com/san-kum/bounce/internal/input"
	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Config sources
	configFile string
	preset     string
	// Overrides
	seed        int64
	gravity     float64
	restitution float64
	radius      float64
	frameRate   int
	width       float64
	height      float64
	theme       string
	// gui
	noSound bool
	// trace
	duration  float64
	dt        float64
	csvOut    bool
	plotWidth int
	jsonPath  string
	svgPath   string
	// config
	savePath string
)

// main registers commands and flags and runs the window front end when
// no subcommand is given. It exits with status 1 on error.
func main() {
	log.SetFlags(0)
	log.SetPrefix("bounce: ")

	rootCmd := &cobra.Command{
		Use:          "bounce",
		Short:        "bouncing ball under gravity, restitution and drag",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.Int64Var(&seed, "seed", 0, "random seed for click kicks (0 = time based)")
	pf.Float64Var(&gravity, "gravity", 0, "gravity in px/s²")
	pf.Float64Var(&restitution, "restitution", 0, "bounce restitution coefficient")
	pf.Float64Var(&radius, "radius", 0, "ball radius in px")
	pf.IntVar(&frameRate, "fps", 0, "frame rate")
	pf.Float64Var(&width, "width", 0, "viewport width in px")
	pf.Float64Var(&height, "height", 0, "viewport height in px")
	pf.StringVar(&theme, "theme", "", "terminal color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable impact sounds")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the simulation in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable impact sounds")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run headlessly at a fixed step and report the bounce",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&duration, "duration", 10.0, "simulated seconds")
	traceCmd.Flags().Float64Var(&dt, "dt", 1.0/240, "fixed timestep in seconds")
	traceCmd.Flags().BoolVar(&csvOut, "csv", false, "write samples as CSV instead of plots")
	traceCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "plot width in columns")
	traceCmd.Flags().StringVar(&jsonPath, "json", "", "also export the trace as JSON to this path")
	traceCmd.Flags().StringVar(&svgPath, "svg", "", "also export the ball path as SVG to this path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if savePath != "" {
				if err := config.Save(savePath, cfg); err != nil {
					return err
				}
				log.Printf("config: saved %s", savePath)
				return nil
			}
			return config.Encode(os.Stdout, cfg)
		},
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "write the effective configuration to this path instead of stdout")

	rootCmd.AddCommand(guiCmd, tuiCmd, traceCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order, and validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	config.LoadDotEnv()

	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.LookupPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		if err := cfg.Merge(configFile); err != nil {
			return nil, err
		}
		log.Printf("config: loaded %s", configFile)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("gravity") {
		cfg.World.Gravity = gravity
	}
	if flags.Changed("restitution") {
		cfg.World.Restitution = restitution
	}
	if flags.Changed("radius") {
		cfg.Ball.Radius = radius
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newScene(cfg *config.Config) *sim.Scene {
	return sim.NewScene(cfg.PhysicsBall(), cfg.PhysicsWorld())
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return gui.Run(newScene(cfg), gui.Options{
		Width:  int(cfg.Width),
		Height: int(cfg.Height),
		FPS:    cfg.FPS,
		MaxDt:  cfg.MaxDt,
		Sound:  !noSound,
		Rand:   input.NewRand(cfg.Seed),
	})
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal belongs to the view from here on
	if config.Debug() {
		f, err := tea.LogToFile("bounce-debug.log", "bounce")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := viz.NewModel(newScene(cfg), viz.Options{
		FPS:   cfg.FPS,
		MaxDt: cfg.MaxDt,
		Theme: cfg.Theme,
		Rand:  input.NewRand(cfg.Seed),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := analysis.Trace(ctx, cfg, duration, dt)
	if err != nil {
		return err
	}

	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, cfg, res); err != nil {
			return err
		}
		log.Printf("trace: wrote %s", jsonPath)
	}
	if svgPath != "" {
		if err := export.ExportSVG(svgPath, res, "#00ff00"); err != nil {
			return err
		}
		log.Printf("trace: wrote %s", svgPath)
	}

	if csvOut {
		return analysis.WriteCSV(os.Stdout, res)
	}

	fmt.Println(analysis.PlotHeight(res, plotWidth, 12))
	fmt.Println()
	fmt.Print(analysis.Trajectory(res, plotWidth, 20))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", len(res.Samples)-1)
	fmt.Fprintf(w, "dt\t%.6fs\n", res.Dt)
	fmt.Fprintf(w, "bounces\t%.0f\n", res.Metrics["bounces"])
	fmt.Fprintf(w, "peak speed\t%.1f px/s\n", res.Metrics["peak_speed"])
	fmt.Fprintf(w, "final energy\t%.1f\n", res.Metrics["energy"])
	if settle := res.Metrics["settle_time"]; settle >= 0 {
		fmt.Fprintf(w, "settled at\t%.3fs\n", settle)
	} else {
		fmt.Fprintf(w, "settled at\t-\n")
	}

	ratios := analysis.ApexRatios(res.Apexes)
	if len(ratios) > 0 {
		fmt.Fprintf(w, "apex ratio (mean)\t%.4f\n", mean(ratios))
		e := cfg.World.Restitution
		fmt.Fprintf(w, "restitution²\t%.4f\n", e*e)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(res.Apexes) > 0 {
		fmt.Println("\napexes (px above floor):")
		for i, h := range res.Apexes {
			if i < len(ratios) {
				fmt.Printf("  %2d  %8.2f  -> %.3f\n", i+1, h, ratios[i])
			} else {
				fmt.Printf("  %2d  %8.2f\n", i+1, h)
			}
		}
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRAVITY\tRESTITUTION\tFRICTION\tDRAG\tRADIUS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.2f\t%.3f\t%.3f\t%.0f\n",
			name,
			p.World.Gravity,
			p.World.Restitution,
			p.World.Friction,
			p.World.Drag,
			p.Ball.Radius,
		)
	}

	return w.Flush()
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
