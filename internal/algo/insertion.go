package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Insertion records insertion sort. The sorted set is the prefix already
// ordered relative to itself and grows by exactly one index per key.
func Insertion(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	n := len(r.a)
	r.markSorted(0)
	r.emit(step.OpStart, "Starting insertion sort, index 0 is a sorted prefix")

	for i := 1; i < n; i++ {
		key := r.a[i]
		r.sortStep(step.OpSelect, fmt.Sprintf("Picking key %d at index %d", key, i), []int{i}, i, 0)

		j := i - 1
		for j >= 0 && key < r.a[j] {
			r.sortStep(step.OpCompare, fmt.Sprintf("Key %d is less than %d at index %d", key, r.a[j], j), []int{i, j}, i, 0)
			r.a[j+1] = r.a[j]
			r.sortStep(step.OpShift, fmt.Sprintf("Shifted %d to index %d", r.a[j+1], j+1), []int{j + 1}, i, 0)
			j--
		}

		r.a[j+1] = key
		r.markSorted(i)
		r.emit(step.OpPlace, fmt.Sprintf("Key %d inserted at index %d, prefix 0..%d is sorted", key, j+1, i), j+1)
	}
	return r.finish("insertion sort"), nil
}
