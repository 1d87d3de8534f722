package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Bubble records bubble sort: one step per comparison, one per swap and one
// per pass finalizing the last unsorted position. A pass without swaps
// finalizes every remaining index in a single adjustment step.
func Bubble(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	n := len(r.a)
	r.emit(step.OpStart, fmt.Sprintf("Starting bubble sort on %d elements", n))

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			r.emit(step.OpCompare, fmt.Sprintf("Comparing array[%d]=%d and array[%d]=%d", j, r.a[j], j+1, r.a[j+1]), j, j+1)
			if r.a[j] > r.a[j+1] {
				r.swap(j, j+1)
				swapped = true
				r.emit(step.OpSwap, fmt.Sprintf("Swapping %d and %d", r.a[j+1], r.a[j]), j, j+1)
			}
		}

		last := n - 1 - i
		r.markSorted(last)
		r.emit(step.OpFinalize, fmt.Sprintf("Position %d is finalized", last), last)

		if !swapped {
			added := make([]int, 0, last)
			for k := 0; k < last; k++ {
				if r.markSorted(k) {
					added = append(added, k)
				}
			}
			if len(added) > 0 {
				r.emit(step.OpFinalize, fmt.Sprintf("No swaps in pass %d, positions 0..%d are already in order", i+1, last-1), added...)
			}
			break
		}
	}

	if r.markSorted(0) {
		r.emit(step.OpFinalize, "Final element at index 0 is sorted", 0)
	}
	return r.finish("bubble sort"), nil
}
