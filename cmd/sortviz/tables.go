package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/scenario"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

var statColumns = []string{"steps", "comparisons", "swaps", "shifts", "placements", "passes"}

func newTable(out io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}

func statHeader(first ...any) table.Row {
	row := table.Row(first)
	for _, c := range statColumns {
		row = append(row, c)
	}
	return row
}

func statRow(stats map[string]float64, first ...any) table.Row {
	row := table.Row(first)
	for _, c := range statColumns {
		row = append(row, humanize.Comma(int64(stats[c])))
	}
	return row
}

func exportSteps(cmd *cobra.Command, args []string) error {
	r, err := resolveRun(cmd, args)
	if err != nil {
		return err
	}

	tr := storage.NewTrace(r.alg.Name, r.alg.Mode, r.input, r.seq)
	if r.alg.IsSearch() {
		tr.Target = &r.target
	}
	tr.Metrics = metrics.Collect(r.seq)

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(tr)
		if err != nil {
			return err
		}
		logger.Info("trace stored", "id", id, "dir", dataDir)
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return storage.WriteJSON(out, tr)
	case "csv":
		return storage.WriteCSV(out, tr.Steps)
	case "svg":
		idx := stepIndex
		if idx < 0 || idx >= len(r.seq) {
			idx = len(r.seq) - 1
		}
		_, err := fmt.Fprintln(out, viz.BarsSVG(r.seq[idx], r.alg.Mode, viz.GetTheme(theme), 800, 400))
		return err
	case "progress-svg":
		_, err := fmt.Fprintln(out, viz.ProgressSVG(r.seq, 800, 300, "#00ff88"))
		return err
	}
	return fmt.Errorf("unknown format: %s", format)
}

func listRuns(cmd *cobra.Command, _ []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	tbl := newTable(cmd.OutOrStdout())
	tbl.AppendHeader(table.Row{"id", "algorithm", "mode", "size", "steps", "created"})
	for _, r := range runs {
		tbl.AppendRow(table.Row{r.ID, r.Algorithm, r.Mode, r.Size, humanize.Comma(int64(r.Steps)), humanize.Time(r.Created)})
	}
	tbl.Render()
	return nil
}

func compareSorters(cmd *cobra.Command, _ []string) error {
	// resolve once with the first sorter so every algorithm sees the same input
	reg := algo.NewRegistry()
	sorters := reg.Sorting()
	r, err := resolveRun(cmd, []string{sorters[0].Name})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "input (%d): %v\n", len(r.input), r.input)

	tbl := newTable(out)
	tbl.AppendHeader(statHeader("algorithm"))
	for _, a := range sorters {
		seq, err := a.Generate(r.input, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		tbl.AppendRow(statRow(metrics.Collect(seq), a.Title))
	}
	tbl.Render()
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sw := &scenario.Sweep{
		Algorithm: args[0],
		MinSize:   sweepMin,
		MaxSize:   sweepMax,
		Stride:    sweepStep,
		Trials:    trials,
		Seed:      sweepSeed,
	}
	results, err := scenario.RunSweep(cmd.Context(), sw, algo.NewRegistry(), cfg)
	if err != nil {
		return err
	}

	tbl := newTable(cmd.OutOrStdout())
	tbl.AppendHeader(statHeader("size", "worst steps"))
	for _, res := range results {
		tbl.AppendRow(statRow(res.Mean, res.Size, humanize.Comma(int64(res.Worst["steps"]))))
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("mean of %d trials", max(trials, 1))})
	tbl.Render()
	return nil
}

func listAlgorithms(cmd *cobra.Command, _ []string) error {
	reg := algo.NewRegistry()
	tbl := newTable(cmd.OutOrStdout())
	tbl.AppendHeader(table.Row{"name", "title", "mode", "presets"})
	for _, name := range reg.List() {
		a, _ := reg.Get(name)
		tbl.AppendRow(table.Row{a.Name, a.Title, a.Mode.String(), len(config.ListPresets(a.Name))})
	}
	tbl.Render()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := args
	if len(names) == 0 {
		for name := range config.Presets {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	for _, name := range names {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for algorithm: %s\n", name)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", name)
		for _, p := range presets {
			fmt.Fprintf(out, "  %-14s %v\n", p, config.GetPreset(name, p).Array)
		}
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runner := scenario.NewRunner(algo.NewRegistry(), cfg)
	runner.Logger = logger
	if saveRun {
		runner.Store = storage.New(dataDir)
		if err := runner.Store.Init(); err != nil {
			return err
		}
	}

	results, runErr := runner.Run(cmd.Context(), sc)

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	}
	tbl := newTable(out)
	tbl.AppendHeader(statHeader("#", "algorithm", "size", "target"))
	for i, res := range results {
		tgt := "-"
		if a, err := runner.Registry.Get(res.Algorithm); err == nil && a.IsSearch() {
			tgt = fmt.Sprint(res.Target)
		}
		tbl.AppendRow(statRow(res.Stats, i+1, res.Algorithm, len(res.Input), tgt))
	}
	tbl.Render()

	for i, res := range results {
		if res.Warning != "" {
			fmt.Fprintf(out, "run %d: %s\n", i+1, res.Warning)
		}
		if res.TraceID != "" {
			fmt.Fprintf(out, "run %d: stored as %s\n", i+1, res.TraceID)
		}
	}
	return runErr
}
