package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/step"
)

// Sweep runs one algorithm over random inputs of increasing size.
type Sweep struct {
	Algorithm string
	MinSize   int
	MaxSize   int
	Stride    int
	Trials    int
	Seed      int64
}

// SweepResult averages the step statistics of every trial at one size.
type SweepResult struct {
	Size  int
	Mean  map[string]float64
	Worst map[string]float64
}

func RunSweep(ctx context.Context, sw *Sweep, reg *algo.Registry, cfg *config.Config) ([]SweepResult, error) {
	a, err := reg.Get(sw.Algorithm)
	if err != nil {
		return nil, err
	}
	if sw.MinSize < 1 || sw.MaxSize < sw.MinSize {
		return nil, fmt.Errorf("invalid size range %d..%d", sw.MinSize, sw.MaxSize)
	}
	stride := max(sw.Stride, 1)
	trials := max(sw.Trials, 1)

	lim := cfg.Limits()
	lim.MaxGenerated = 0

	var results []SweepResult
	for size := sw.MinSize; size <= sw.MaxSize; size += stride {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		stats, err := runTrials(a, size, trials, sw.Seed+int64(size)*int64(trials), lim, cfg.Search.Target)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", size, err)
		}

		res := SweepResult{Size: size, Mean: map[string]float64{}, Worst: map[string]float64{}}
		for _, st := range stats {
			for name, v := range st {
				res.Mean[name] += v / float64(trials)
				if w, ok := res.Worst[name]; !ok || v > w {
					res.Worst[name] = v
				}
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// runTrials runs n independent trials concurrently. Trial i draws its input
// from seedStart+i so results do not depend on scheduling.
func runTrials(a algo.Algorithm, size, n int, seedStart int64, lim input.Limits, fallback int) ([]map[string]float64, error) {
	results := make([]map[string]float64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seedStart + int64(idx)))
			arr, err := input.Random(size, lim, rng)
			if err != nil {
				errs[idx] = err
				return
			}
			target := fallback
			if a.IsSearch() {
				target = input.PickTarget(arr, target, rng)
			}
			if a.Mode == step.ModeBinarySearch {
				arr, _ = input.PrepareForBinarySearch(arr)
			}
			seq, err := a.Generate(arr, target)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = metrics.Collect(seq)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
