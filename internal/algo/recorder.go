package algo

import (
	"github.com/san-kum/sortviz/internal/step"
)

// recorder is the explicit output buffer threaded through every generator,
// including the recursive ones. It owns the working array and the sorted set.
type recorder struct {
	a      []int
	steps  step.Sequence
	sorted step.IndexSet
}

func newRecorder(input []int) *recorder {
	a := make([]int, len(input))
	copy(a, input)
	return &recorder{a: a, sorted: step.NewIndexSet()}
}

func (r *recorder) snapshot() []int {
	c := make([]int, len(r.a))
	copy(c, r.a)
	return c
}

func (r *recorder) sortStep(op step.Op, action string, highlight []int, pivot, gap int) {
	r.steps = append(r.steps, step.SortStep{
		Base: step.Base{
			Array:     r.snapshot(),
			Action:    action,
			Op:        op,
			Highlight: highlight,
		},
		Sorted: r.sorted,
		Pivot:  pivot,
		Gap:    gap,
	})
}

// emit records a sort step without pivot or gap.
func (r *recorder) emit(op step.Op, action string, highlight ...int) {
	r.sortStep(op, action, highlight, step.NoIndex, 0)
}

// markSorted adds i to the sorted set, reporting whether it was new.
func (r *recorder) markSorted(i int) bool {
	if r.sorted.Contains(i) {
		return false
	}
	r.sorted = r.sorted.With(i)
	return true
}

func (r *recorder) finish(name string) step.Sequence {
	r.sorted = step.FullRange(len(r.a))
	r.emit(step.OpComplete, "Finished "+name)
	return r.steps
}

func (r *recorder) swap(i, j int) {
	r.a[i], r.a[j] = r.a[j], r.a[i]
}

func span(start, end int) []int {
	idx := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		idx = append(idx, i)
	}
	return idx
}

func requireNonEmpty(a []int) error {
	if len(a) == 0 {
		return &step.ValidationError{Field: "array", Reason: "sorting requires at least one element", Wrapped: step.ErrEmptyInput}
	}
	return nil
}
