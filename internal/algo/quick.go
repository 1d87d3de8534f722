package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Quick records quicksort with Lomuto partitioning around the last element.
// Each placed pivot and each singleton segment joins the sorted set once.
func Quick(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	r.emit(step.OpStart, fmt.Sprintf("Starting quick sort on %d elements", len(r.a)))
	r.quickSort(0, len(r.a)-1)
	return r.finish("quick sort"), nil
}

func (r *recorder) quickSort(low, high int) {
	if low < high {
		pi := r.partition(low, high)
		r.quickSort(low, pi-1)
		r.quickSort(pi+1, high)
		return
	}
	if low == high && r.markSorted(low) {
		r.emit(step.OpFinalize, fmt.Sprintf("Single element at index %d is sorted", low), low)
	}
}

func (r *recorder) partition(low, high int) int {
	pivot := r.a[high]
	r.sortStep(step.OpPivot, fmt.Sprintf("Pivot selected: %d at index %d", pivot, high), nil, high, 0)

	i := low - 1
	for j := low; j < high; j++ {
		r.sortStep(step.OpCompare, fmt.Sprintf("Comparing %d with pivot %d", r.a[j], pivot), []int{j}, high, 0)
		if r.a[j] < pivot {
			i++
			r.swap(i, j)
			r.sortStep(step.OpSwap, fmt.Sprintf("%d is less than pivot, swapping indices %d and %d", r.a[i], i, j), []int{i, j}, high, 0)
		}
		r.sortStep(step.OpReset, "Moving to next element", nil, high, 0)
	}

	pi := i + 1
	r.swap(pi, high)
	r.markSorted(pi)
	r.sortStep(step.OpPlace, fmt.Sprintf("Pivot %d placed at final index %d", pivot, pi), []int{pi}, pi, 0)
	return pi
}
