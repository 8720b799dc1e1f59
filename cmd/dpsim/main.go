package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/dpsim/internal/analysis"
	"github.com/san-kum/dpsim/internal/config"
	"github.com/san-kum/dpsim/internal/dynamo"
	"github.com/san-kum/dpsim/internal/export"
	"github.com/san-kum/dpsim/internal/gui"
	"github.com/san-kum/dpsim/internal/logging"
	"github.com/san-kum/dpsim/internal/metrics"
	"github.com/san-kum/dpsim/internal/physics"
	"github.com/san-kum/dpsim/internal/render"
	"github.com/san-kum/dpsim/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const title = "Double Pendulum"

var (
	configFile string
	preset     string
	logLevel   string
	theta1     float64
	theta2     float64
	dt         float64
	frameRate  int
	// run
	steps    int
	svgOut   string
	pngOut   string
	lyapunov bool
	spectrum bool
	logFile  string
	outFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dpsim",
		Short:        "double pendulum simulator",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.Float64Var(&theta1, "theta1", 0, "initial angle of the upper arm")
	pf.Float64Var(&theta2, "theta2", 0, "initial angle of the lower arm")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "timestep per frame")
	pf.IntVar(&frameRate, "fps", 0, "frame rate cap (0 = uncapped)")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "run the simulation in a window",
		RunE:  runWindow,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless for a number of frames",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&steps, "steps", 1000, "number of frames")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final scene as SVG")
	runCmd.Flags().StringVar(&pngOut, "png", "", "write the final scene as PNG")
	runCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate the largest Lyapunov exponent")
	runCmd.Flags().BoolVar(&spectrum, "spectrum", false, "estimate the Lyapunov exponent of each state component")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration",
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVar(&outFile, "out", "", "write to file instead of stdout")

	rootCmd.AddCommand(windowCmd, liveCmd, runCmd, presetsCmd, configCmd)
	return rootCmd
}

// resolveConfig applies, in order: defaults or preset, config file, flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("theta1") {
		cfg.Initial.Theta1 = theta1
	}
	if flags.Changed("theta2") {
		cfg.Initial.Theta2 = theta2
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("fps") {
		cfg.Render.FPS = frameRate
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type session struct {
	bridge *render.Bridge
	scene  *render.Scene
	energy *metrics.EnergyDrift
}

func newSession(cfg *config.Config, log *zap.Logger) (*session, error) {
	sim, err := physics.NewSimulation(cfg.InitialState(), cfg.Params(), cfg.Dt)
	if err != nil {
		return nil, err
	}
	scene, err := cfg.NewScene()
	if err != nil {
		return nil, err
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	return &session{
		bridge: render.NewBridge(sim, scene, style, cfg.Origin(), log),
		scene:  scene,
		energy: metrics.NewEnergyDrift(cfg.Params(), metrics.DefaultHistory),
	}, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	gui.NewApp(s.bridge, s.scene, s.energy, cfg.Render.FPS, title, log).Run()
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// stdout belongs to the terminal UI
	log := zap.NewNop()
	if logFile != "" {
		log, err = logging.ToFile(logFile, cfg.Log.Level, cfg.Log.Development)
		if err != nil {
			return err
		}
		defer log.Sync()
	}

	s, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(s.bridge, s.scene, s.energy, cfg.Render.FPS, title))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if steps <= 0 {
		return fmt.Errorf("--steps must be positive, got %d", steps)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "running %d frames...\n", steps)

	th1 := make([]float64, 0, steps)
	th2 := make([]float64, 0, steps)
	s.energy.Observe(s.bridge.State())

	start := time.Now()
	err = s.bridge.Run(ctx, func() bool {
		st := s.bridge.State()
		s.energy.Observe(st)
		th1 = append(th1, st.Theta1)
		th2 = append(th2, st.Theta2)
		return s.bridge.Frames() < steps
	})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, render.ErrStopped):
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "interrupted after %d frames\n", s.bridge.Frames())
	case errors.Is(err, dynamo.ErrNumericalOverflow):
		fmt.Fprintf(out, "halted: %v\n", err)
	case err != nil:
		return err
	}

	if err := summarize(out, s, elapsed, th1, th2); err != nil {
		return err
	}

	if lyapunov {
		lambda, err := analysis.LyapunovExponent(cfg.InitialState(), cfg.Params(), cfg.Dt, steps, 1e-8)
		fmt.Fprintf(out, "\nlyapunov exponent: %.6f%s\n", lambda, haltNote(err))
	}
	if spectrum {
		exps, err := analysis.LyapunovSpectrum(cfg.InitialState(), cfg.Params(), cfg.Dt, steps, 1e-8)
		fmt.Fprintf(out, "\nlyapunov spectrum:%s\n", haltNote(err))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, l := range exps {
			fmt.Fprintf(w, "  %s\t%.6f\n", components[i], l)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	caption := fmt.Sprintf("frame %d", s.bridge.Frames())
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.SceneToSVG(s.scene)), 0644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		log.Info("wrote svg", zap.String("path", svgOut))
	}
	if pngOut != "" {
		opts := export.DefaultPNGOptions()
		opts.Caption = caption
		if err := export.WritePNG(pngOut, s.scene, opts); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		log.Info("wrote png", zap.String("path", pngOut))
	}
	return nil
}

var components = [4]string{"theta1", "theta2", "omega1", "omega2"}

// haltNote describes an overflow that cut an estimate short.
func haltNote(err error) string {
	var simErr *dynamo.SimulationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &simErr):
		return fmt.Sprintf(" (partial, overflow at step %d)", simErr.Step)
	default:
		return fmt.Sprintf(" (%v)", err)
	}
}

func summarize(out io.Writer, s *session, elapsed time.Duration, th1, th2 []float64) error {
	st := s.bridge.State()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", s.bridge.Frames())
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed)
	fmt.Fprintf(w, "theta1\t%.6f\n", st.Theta1)
	fmt.Fprintf(w, "theta2\t%.6f\n", st.Theta2)
	fmt.Fprintf(w, "omega1\t%.6f\n", st.Omega1)
	fmt.Fprintf(w, "omega2\t%.6f\n", st.Omega2)
	fmt.Fprintf(w, "energy\t%.4f\n", s.energy.Current())
	fmt.Fprintf(w, "%s\t%.6e\n", s.energy.Name(), s.energy.Value())
	fmt.Fprintf(w, "trace\t%d\n", s.scene.TraceLen())
	if err := w.Flush(); err != nil {
		return err
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"theta1 (upper arm)", th1},
		{"theta2 (lower arm)", th2},
	} {
		if len(series.data) < 2 {
			continue
		}
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if outFile != "" {
		return config.Save(outFile, cfg)
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}
