package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Merge records top-down merge sort over half-open segments. Split steps are
// emitted in pre-order and merge steps in post-order. Merged regions are not
// marked sorted before the terminal step.
func Merge(input []int) (step.Sequence, error) {
	if err := requireNonEmpty(input); err != nil {
		return nil, err
	}
	r := newRecorder(input)
	r.emit(step.OpStart, fmt.Sprintf("Starting merge sort on %d elements", len(r.a)))
	r.mergeSort(0, len(r.a))
	return r.finish("merge sort"), nil
}

func (r *recorder) mergeSort(start, end int) {
	if end-start < 2 {
		return
	}
	r.emit(step.OpSplit, fmt.Sprintf("Splitting segment [%d,%d)", start, end), span(start, end)...)

	mid := (start + end) / 2
	r.mergeSort(start, mid)
	r.mergeSort(mid, end)
	r.merge(start, mid, end)
}

func (r *recorder) merge(start, mid, end int) {
	left := append([]int(nil), r.a[start:mid]...)
	right := append([]int(nil), r.a[mid:end]...)

	r.emit(step.OpMergeStart, fmt.Sprintf("Preparing to merge [%d,%d) and [%d,%d)", start, mid, mid, end), span(start, end)...)

	i, j, k := 0, 0, start
	for i < len(left) && j < len(right) {
		r.emit(step.OpCompare, fmt.Sprintf("Comparing %d from left half with %d from right half", left[i], right[j]), start+i, mid+j)
		if left[i] <= right[j] {
			r.a[k] = left[i]
			i++
		} else {
			r.a[k] = right[j]
			j++
		}
		r.emit(step.OpPlace, fmt.Sprintf("Placing %d at index %d", r.a[k], k), k)
		k++
	}

	for ; i < len(left); i++ {
		r.a[k] = left[i]
		r.emit(step.OpPlace, fmt.Sprintf("Placing remaining element %d from left half at %d", left[i], k), k)
		k++
	}
	for ; j < len(right); j++ {
		r.a[k] = right[j]
		r.emit(step.OpPlace, fmt.Sprintf("Placing remaining element %d from right half at %d", right[j], k), k)
		k++
	}

	r.emit(step.OpMergeDone, fmt.Sprintf("Merged segment complete from index %d to %d", start, end-1), span(start, end)...)
}
