package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Selection records selection sort. The running minimum is carried in the
// step's pivot index.
func Selection(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	n := len(r.a)
	r.emit(step.OpStart, fmt.Sprintf("Starting selection sort on %d elements", n))

	for i := 0; i < n-1; i++ {
		minIndex := i
		r.sortStep(step.OpPass, fmt.Sprintf("Starting pass %d at index %d", i+1, i), []int{i}, minIndex, 0)

		for j := i + 1; j < n; j++ {
			r.sortStep(step.OpCompare, fmt.Sprintf("Comparing %d at %d with current minimum %d at %d", r.a[j], j, r.a[minIndex], minIndex), []int{j}, minIndex, 0)
			if r.a[j] < r.a[minIndex] {
				minIndex = j
				r.sortStep(step.OpNewMin, fmt.Sprintf("New minimum %d at index %d", r.a[minIndex], minIndex), []int{j}, minIndex, 0)
			}
		}

		if minIndex != i {
			r.swap(i, minIndex)
			r.emit(step.OpSwap, fmt.Sprintf("Swapping %d into position %d", r.a[i], i), i, minIndex)
		} else {
			r.emit(step.OpNoSwap, fmt.Sprintf("Element at %d is already the smallest remaining", i), i)
		}

		r.markSorted(i)
		r.emit(step.OpFinalize, fmt.Sprintf("Position %d is finalized", i))
	}

	if r.markSorted(n - 1) {
		r.emit(step.OpFinalize, fmt.Sprintf("Final element at index %d is sorted", n-1))
	}
	return r.finish("selection sort"), nil
}
