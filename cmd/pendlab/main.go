package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendlab/internal/analysis"
	"github.com/san-kum/pendlab/internal/config"
	"github.com/san-kum/pendlab/internal/export"
	"github.com/san-kum/pendlab/internal/gui"
	"github.com/san-kum/pendlab/internal/pendulum"
	"github.com/san-kum/pendlab/internal/script"
	"github.com/san-kum/pendlab/internal/session"
	"github.com/san-kum/pendlab/internal/trace"
	"github.com/san-kum/pendlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	frames     int
	fps        int
	record     bool
	scenario   string
	svgKind    string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pendlab",
		Short: "interactive pendulum simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the desktop window when no command given
			return runGUI(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pendlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "starting preset")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a desktop window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&record, "record", false, "record the run to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal (mouse supported)",
		RunE:  runLive,
	}
	liveCmd.Flags().BoolVar(&record, "record", false, "record the run to the data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the trace",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	runCmd.Flags().IntVar(&fps, "fps", 60, "nominal frame rate for timestamps")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "scripted input scenario (yaml)")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "play a recorded run back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot (angle vs velocity)",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "swing frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgKind, "kind", "trajectory", "trajectory or phase")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list starting presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s gravity=%.1f mass=%.1f radius=%.0f angle=%.1f\n",
					name, p.Gravity, p.Mass, p.Radius, p.Angle)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the physics step",
		RunE:  benchStep,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, replayCmd, listCmd, plotCmd, phaseCmd,
		analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves defaults, an optional config file, and an optional
// preset, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Pendulum = *p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildSession(cfg *config.Config) *session.Session {
	p := pendulum.New(cfg.Pendulum.OriginX, cfg.Pendulum.OriginY, cfg.Pendulum.Radius)
	p.Angle = cfg.Pendulum.Angle
	p.M = cfg.Pendulum.Mass
	p.G = cfg.Pendulum.Gravity

	return session.NewWithOptions(p, session.Options{
		RejectNonFinite: cfg.Validation.RejectNonFinite,
		MinRadius:       cfg.Validation.MinRadius,
	})
}

func saveRecording(cfg *config.Config, sess *session.Session, rec *trace.Recorder, scenarioName string) error {
	if rec.Len() == 0 {
		return nil
	}

	st := trace.NewStore(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	p := sess.Pendulum()
	runID, err := st.Save(trace.RunMetadata{
		FPS:      cfg.Window.FPS,
		Preset:   preset,
		Scenario: scenarioName,
		Gravity:  p.G,
		Mass:     p.M,
		Radius:   p.R,
	}, rec.Frames())
	if err != nil {
		return err
	}

	fmt.Printf("saved %d frames as %s\n", rec.Len(), runID)
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sess := buildSession(cfg)
	var rec *trace.Recorder
	if record {
		rec = trace.NewRecorder(cfg.Window.FPS)
	}

	gui.NewApp(cfg, sess, rec).Run()

	if rec != nil {
		return saveRecording(cfg, sess, rec, "")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sess := buildSession(cfg)
	var rec *trace.Recorder
	if record {
		rec = trace.NewRecorder(cfg.Window.FPS)
	}

	if err := viz.Run(cfg, sess, rec); err != nil {
		return err
	}

	if rec != nil {
		return saveRecording(cfg, sess, rec, "")
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Window.FPS = fps

	sess := buildSession(cfg)
	rec := trace.NewRecorder(fps)

	sc := &script.Scenario{Frames: frames}
	scenarioName := ""
	if scenario != "" {
		loaded, err := script.Load(scenario)
		if err != nil {
			return err
		}
		sc = loaded
		scenarioName = sc.Name
	}

	fmt.Printf("running %d frames...\n", sc.Frames)
	start := time.Now()

	err = script.Run(context.Background(), sess, sc, func(snap pendulum.Snapshot) {
		rec.Observe(snap)
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	return saveRecording(cfg, sess, rec, scenarioName)
}

func replayRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return viz.Replay(cfg, *meta, frames)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := trace.NewStore(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tFPS\tGRAVITY\tMASS\tRADIUS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.2f\t%.0f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.FPS,
			run.Gravity,
			run.Mass,
			run.Radius,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*trace.RunMetadata, []trace.FrameRecord, error) {
	st := trace.NewStore(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%d frames)\n\n", meta.ID, len(frames))

	series := []struct {
		name   string
		values func(trace.FrameRecord) float64
	}{
		{"angle (rad)", func(f trace.FrameRecord) float64 { return f.Angle }},
		{"angular velocity", func(f trace.FrameRecord) float64 { return f.Velocity }},
		{"angular acceleration", func(f trace.FrameRecord) float64 { return f.Acceleration }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.values(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	points := make([]analysis.PhasePoint, len(frames))
	for i, f := range frames {
		points[i] = analysis.PhasePoint{Theta: f.Angle, Omega: f.Velocity}
	}

	fmt.Printf("phase space: %s\n", meta.ID)
	fmt.Println(analysis.PhasePortraitASCII(points, 70, 20))
	fmt.Println("legend: . = early, o = middle, ● = late")
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = f.Angle
	}

	ps := analysis.PowerSpectrum(analysis.PadPow2(data))
	plotData := ps[:len(ps)/4]
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (angle)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(data, float64(meta.FPS))
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return trace.ExportCSV(os.Stdout, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return trace.ExportJSON(os.Stdout, *meta, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, frames, err := loadRun(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var svg string
	switch svgKind {
	case "trajectory":
		svg = export.TrajectorySVG(frames, svgWidth, svgHeight,
			cfg.Pendulum.OriginX, cfg.Pendulum.OriginY)
	case "phase":
		svg = export.PhaseSVG(frames, svgWidth, svgHeight)
	default:
		return fmt.Errorf("unknown kind: %s (trajectory or phase)", svgKind)
	}

	_, err = fmt.Print(svg)
	return err
}

func benchStep(cmd *cobra.Command, args []string) error {
	counts := []int{10_000, 100_000, 1_000_000}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tTIME\tSTEPS/SEC")

	for _, n := range counts {
		p := pendulum.New(400, 0, 200)
		start := time.Now()
		for i := 0; i < n; i++ {
			p.Step()
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%d\t%v\t%.0f\n", n, elapsed, float64(n)/elapsed.Seconds())
	}
	return w.Flush()
}
