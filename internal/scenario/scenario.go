// Package scenario runs scripted lists of generator runs loaded from YAML.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
	"github.com/san-kum/sortviz/internal/storage"
)

// Scenario is an ordered list of runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Seed        int64  `yaml:"seed"`
	Runs        []Run  `yaml:"runs"`
}

// Run selects an algorithm and its input. Array wins over Preset, and
// Preset wins over Size.
type Run struct {
	Algorithm string `yaml:"algorithm"`
	Array     []int  `yaml:"array"`
	Preset    string `yaml:"preset"`
	Size      int    `yaml:"size"`
	Target    *int   `yaml:"target"`
	Save      bool   `yaml:"save"`
}

type Result struct {
	Algorithm string
	Input     []int
	Target    int
	Warning   string
	Steps     step.Sequence
	Stats     map[string]float64
	TraceID   string
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Runs) == 0 {
		return nil, errors.New("scenario has no runs")
	}
	for i, r := range sc.Runs {
		if r.Algorithm == "" {
			return nil, fmt.Errorf("run %d: missing algorithm", i+1)
		}
	}
	return &sc, nil
}

// Runner executes scenarios. Store is optional; runs with Save set are
// skipped for persistence when it is nil.
type Runner struct {
	Registry *algo.Registry
	Config   *config.Config
	Store    *storage.Store
	Logger   *slog.Logger
}

func NewRunner(reg *algo.Registry, cfg *config.Config) *Runner {
	return &Runner{
		Registry: reg,
		Config:   cfg,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Run executes every run in order. Results gathered before a failure are
// returned together with the error.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]Result, error) {
	seed := sc.Seed
	if seed == 0 {
		seed = r.Config.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	results := make([]Result, 0, len(sc.Runs))
	for i, run := range sc.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r.Logger.Info("running scenario step", "step", i+1, "of", len(sc.Runs), "algorithm", run.Algorithm)

		res, err := r.runOne(run, rng)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, *res)
	}
	return results, nil
}

func (r *Runner) runOne(run Run, rng *rand.Rand) (*Result, error) {
	a, err := r.Registry.Get(run.Algorithm)
	if err != nil {
		return nil, err
	}

	arr, target, err := r.resolveInput(run, a, rng)
	if err != nil {
		return nil, err
	}

	res := &Result{Algorithm: a.Name, Target: target}
	if a.Mode == step.ModeBinarySearch {
		sorted, warn := input.PrepareForBinarySearch(arr)
		arr = sorted
		if warn != nil {
			res.Warning = warn.Error()
		}
	}
	res.Input = arr

	seq, err := a.Generate(arr, target)
	if err != nil {
		return nil, err
	}
	res.Steps = seq
	res.Stats = metrics.Collect(seq)

	if run.Save && r.Store != nil {
		tr := storage.NewTrace(a.Name, a.Mode, arr, seq)
		if a.IsSearch() {
			tr.Target = &target
		}
		tr.Metrics = res.Stats
		id, err := r.Store.Save(tr)
		if err != nil {
			return nil, fmt.Errorf("save trace: %w", err)
		}
		res.TraceID = id
	}
	return res, nil
}

func (r *Runner) resolveInput(run Run, a algo.Algorithm, rng *rand.Rand) ([]int, int, error) {
	target := r.Config.Search.Target
	var arr []int

	switch {
	case len(run.Array) > 0:
		arr = append([]int(nil), run.Array...)
	case run.Preset != "":
		p := config.GetPreset(a.Name, run.Preset)
		if p == nil {
			return nil, 0, fmt.Errorf("unknown preset %s for %s", run.Preset, a.Name)
		}
		arr = append([]int(nil), p.Array...)
		if p.Target != 0 {
			target = p.Target
		}
	default:
		size := run.Size
		if size == 0 {
			size = r.Config.Input.DefaultSize
		}
		var err error
		arr, err = input.Random(size, r.Config.Limits(), rng)
		if err != nil {
			return nil, 0, err
		}
		if a.IsSearch() && run.Target == nil {
			target = input.PickTarget(arr, target, rng)
		}
	}

	if run.Target != nil {
		target = *run.Target
	}
	return arr, target, nil
}
