package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Shell records shell sort over the gap sequence n/2, n/4, ..., 1. Every
// mid-pass step carries the active gap; nothing is marked sorted until the
// terminal step.
func Shell(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	n := len(r.a)
	r.emit(step.OpStart, fmt.Sprintf("Starting shell sort on %d elements", n))

	for gap := n / 2; gap > 0; gap /= 2 {
		r.sortStep(step.OpPass, fmt.Sprintf("Starting pass with gap=%d", gap), nil, step.NoIndex, gap)

		for i := gap; i < n; i++ {
			temp := r.a[i]
			r.sortStep(step.OpSelect, fmt.Sprintf("Selecting %d at index %d", temp, i), []int{i}, step.NoIndex, gap)

			j := i
			for j >= gap && r.a[j-gap] > temp {
				r.sortStep(step.OpCompare, fmt.Sprintf("%d at index %d is greater than %d", r.a[j-gap], j-gap, temp), []int{j, j - gap}, step.NoIndex, gap)
				r.a[j] = r.a[j-gap]
				r.sortStep(step.OpShift, fmt.Sprintf("Shifted %d from index %d to %d", r.a[j], j-gap, j), []int{j}, step.NoIndex, gap)
				j -= gap
			}

			r.a[j] = temp
			r.sortStep(step.OpPlace, fmt.Sprintf("Placed %d at index %d", temp, j), []int{j}, step.NoIndex, gap)
		}
	}
	return r.finish("shell sort"), nil
}
