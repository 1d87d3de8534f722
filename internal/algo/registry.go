package algo

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortviz/internal/step"
)

// Algorithm describes one step generator. Target is ignored by sorts.
type Algorithm struct {
	Name     string
	Title    string
	Mode     step.Mode
	Generate func(a []int, target int) (step.Sequence, error)
}

// IsSearch reports whether the algorithm consumes a target.
func (a Algorithm) IsSearch() bool {
	return a.Mode == step.ModeLinearSearch || a.Mode == step.ModeBinarySearch
}

type Registry struct {
	algorithms map[string]Algorithm
}

func sorter(fn func([]int) (step.Sequence, error)) func([]int, int) (step.Sequence, error) {
	return func(a []int, _ int) (step.Sequence, error) { return fn(a) }
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.Register(Algorithm{Name: "bubble", Title: "Bubble Sort", Mode: step.ModeSorting, Generate: sorter(Bubble)})
	r.Register(Algorithm{Name: "selection", Title: "Selection Sort", Mode: step.ModeSorting, Generate: sorter(Selection)})
	r.Register(Algorithm{Name: "insertion", Title: "Insertion Sort", Mode: step.ModeSorting, Generate: sorter(Insertion)})
	r.Register(Algorithm{Name: "shell", Title: "Shell Sort", Mode: step.ModeSorting, Generate: sorter(Shell)})
	r.Register(Algorithm{Name: "merge", Title: "Merge Sort", Mode: step.ModeSorting, Generate: sorter(Merge)})
	r.Register(Algorithm{Name: "quick", Title: "Quick Sort", Mode: step.ModeSorting, Generate: sorter(Quick)})
	r.Register(Algorithm{Name: "linear", Title: "Linear Search", Mode: step.ModeLinearSearch, Generate: Linear})
	r.Register(Algorithm{Name: "binary", Title: "Binary Search", Mode: step.ModeBinarySearch, Generate: Binary})

	return r
}

func (r *Registry) Register(a Algorithm) {
	r.algorithms[a.Name] = a
}

func (r *Registry) Get(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return a, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sorting lists the sorting algorithms in name order.
func (r *Registry) Sorting() []Algorithm {
	var out []Algorithm
	for _, name := range r.List() {
		if a := r.algorithms[name]; a.Mode == step.ModeSorting {
			out = append(out, a)
		}
	}
	return out
}
