package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/step"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	preset     string
	arrayText  string
	size       int
	seed       int64
	target     int
	speedMs    int
	theme      string
	autoplay   bool
	tracePath  string
	runID      string
	format     string
	outPath    string
	saveRun    bool
	addr       string
	bstURL     string
	plain      bool
	sweepMin   int
	sweepMax   int
	sweepStep  int
	trials     int
	sweepSeed  int64
	stepIndex  int
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// main registers every command; with no subcommand the interactive player
// starts with the configured default algorithm.
func main() {
	rootCmd := &cobra.Command{
		Use:               "sortviz",
		Short:             "step-by-step sorting and searching visualizer",
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		RunE:              runPlay,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	addInputFlags(rootCmd)
	addPlayerFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play an algorithm in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}
	addInputFlags(playCmd)
	addPlayerFlags(playCmd)
	playCmd.Flags().StringVar(&tracePath, "trace", "", "replay an exported JSON trace")

	stepsCmd := &cobra.Command{
		Use:   "steps [algorithm]",
		Short: "print every step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printSteps,
	}
	addInputFlags(stepsCmd)

	exportCmd := &cobra.Command{
		Use:   "export [algorithm]",
		Short: "export the step sequence to JSON or CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSteps,
	}
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, svg, progress-svg)")
	exportCmd.Flags().IntVar(&stepIndex, "step", -1, "step drawn by the svg format (default last)")
	exportCmd.Flags().StringVar(&theme, "theme", "classic", "svg color theme")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&saveRun, "store", false, "save the trace into the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored traces",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot sorted progress or search window over the steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSteps,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().StringVar(&runID, "run", "", "plot a stored trace")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare every sorting algorithm on the same input",
		Args:  cobra.NoArgs,
		RunE:  compareSorters,
	}
	addInputFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "measure step statistics over increasing input sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&sweepMin, "min", 5, "smallest size")
	sweepCmd.Flags().IntVar(&sweepMax, "max", 50, "largest size")
	sweepCmd.Flags().IntVar(&sweepStep, "stride", 5, "size increment")
	sweepCmd.Flags().IntVar(&trials, "trials", 10, "random inputs per size")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 1, "random seed")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the visualize, array and bst endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	serveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	bstCmd := newBSTCmd()

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a scripted list of algorithm runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&saveRun, "store", false, "save runs marked save: true into the data directory")

	rootCmd.AddCommand(playCmd, stepsCmd, exportCmd, listCmd, plotCmd, compareCmd, sweepCmd,
		algorithmsCmd, presetsCmd, serveCmd, bstCmd, scenarioCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset input")
	cmd.Flags().StringVar(&arrayText, "array", "", "comma separated input, e.g. \"5,3,8,1\"")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "random input size")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	cmd.Flags().IntVar(&target, "target", config.DefaultTarget, "search target")
}

func addPlayerFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&speedMs, "speed", config.DefaultSpeedMs, "milliseconds per step")
	cmd.Flags().StringVar(&theme, "theme", "classic", "color theme")
	cmd.Flags().BoolVar(&autoplay, "autoplay", false, "start playing immediately")
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level := logLevel
	if !cmd.Flags().Changed("log-level") && configFile != "" {
		if cfg, err := config.Load(configFile); err == nil && cfg.LogLevel != "" {
			level = cfg.LogLevel
		}
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads --config when set and applies flags the user changed.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("size") {
		cfg.Input.DefaultSize = size
	}
	if flags.Changed("speed") {
		cfg.Playback.SpeedMs = speedMs
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}
	if flags.Changed("url") {
		cfg.BST.URL = bstURL
	}
	return cfg, cfg.Validate()
}

// run is one resolved generator invocation.
type run struct {
	cfg     *config.Config
	alg     algo.Algorithm
	input   []int
	target  int
	warning string
	seq     step.Sequence
}

// resolveRun picks the algorithm and input the way every command does:
// config first, then the preset, then flags the user changed. Without an
// explicit array a random one is drawn.
func resolveRun(cmd *cobra.Command, args []string) (*run, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	name := cfg.Algorithm
	if len(args) > 0 {
		name = strings.ToLower(args[0])
	}
	alg, err := algo.NewRegistry().Get(name)
	if err != nil {
		return nil, err
	}

	presetTarget := false
	if preset != "" {
		p := config.GetPreset(alg.Name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(alg.Name))
		}
		p.Apply(cfg)
		presetTarget = p.Target != 0
	}

	if cmd.Flags().Changed("array") {
		arr, err := input.ParseCustom(arrayText, cfg.Limits())
		if err != nil {
			return nil, err
		}
		cfg.Array = arr
	}
	if cmd.Flags().Changed("target") {
		cfg.Search.Target = target
	}

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	r := &run{cfg: cfg, alg: alg, input: cfg.Array, target: cfg.Search.Target}
	if len(r.input) == 0 {
		r.input, err = input.Random(cfg.Input.DefaultSize, cfg.Limits(), rng)
		if err != nil {
			return nil, err
		}
		if alg.IsSearch() && !cmd.Flags().Changed("target") && !presetTarget {
			r.target = input.PickTarget(r.input, r.target, rng)
		}
	}

	if alg.Mode == step.ModeBinarySearch {
		sorted, warn := input.PrepareForBinarySearch(r.input)
		r.input = sorted
		if warn != nil {
			r.warning = warn.Error()
		}
	}

	r.seq, err = alg.Generate(r.input, r.target)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated steps", "algorithm", alg.Name, "size", len(r.input), "steps", len(r.seq))
	return r, nil
}

func (r *run) title() string {
	if r.alg.IsSearch() {
		return fmt.Sprintf("%s (target %d)", r.alg.Title, r.target)
	}
	return r.alg.Title
}
