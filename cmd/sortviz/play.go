package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

func playerOptions(cfg *config.Config, title, warning string) viz.Options {
	minSpeed, maxSpeed := cfg.SpeedBounds()
	return viz.Options{
		Title:    title,
		Warning:  warning,
		Speed:    cfg.Speed(),
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
		Autoplay: autoplay,
		Theme:    theme,
		Logger:   logger,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if tracePath != "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tr, err := storage.LoadFile(tracePath)
		if err != nil {
			return fmt.Errorf("failed to load trace: %w", err)
		}
		return viz.Run(tr.Steps, playerOptions(cfg, tr.Algorithm, ""))
	}

	r, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(r.seq, playerOptions(r.cfg, r.title(), r.warning))
}

func printSteps(cmd *cobra.Command, args []string) error {
	r, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "algorithm: %s\n", r.title())
	fmt.Fprintf(out, "input: %v\n", r.input)
	if r.warning != "" {
		fmt.Fprintf(out, "warning: %s\n", r.warning)
	}
	fmt.Fprintf(out, "legend: %s\n\n", viz.Legend(r.alg.Mode))

	writeSteps(out, r.seq, r.alg.Mode)
	fmt.Fprintln(out)
	writeStats(out, metrics.Collect(r.seq))
	return nil
}

func writeSteps(out io.Writer, seq step.Sequence, mode step.Mode) {
	for i, rec := range seq {
		fmt.Fprintln(out, viz.FormatStep(i, rec, mode))
	}
}

func writeStats(out io.Writer, stats map[string]float64) {
	fmt.Fprintln(out, "stats:")
	for _, name := range metrics.Names(stats) {
		fmt.Fprintf(out, "  %-12s %s\n", name, humanize.Comma(int64(stats[name])))
	}
}

func plotSteps(cmd *cobra.Command, args []string) error {
	var (
		seq   step.Sequence
		title string
	)
	if runID != "" {
		tr, err := storage.New(dataDir).Load(runID)
		if err != nil {
			return err
		}
		seq, title = tr.Steps, fmt.Sprintf("%s (%s)", tr.Algorithm, tr.ID)
	} else {
		r, err := resolveRun(cmd, args)
		if err != nil {
			return err
		}
		seq, title = r.seq, r.title()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", strings.ToLower(title))
	fmt.Fprintf(out, "steps: %s\n\n", humanize.Comma(int64(len(seq))))

	chart := viz.Chart(seq, -1, 80, 10)
	if chart == "" {
		return fmt.Errorf("not enough steps to plot")
	}
	fmt.Fprintln(out, chart)
	return nil
}
