package algo

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

func copyInts(a []int) []int {
	c := make([]int, len(a))
	copy(c, a)
	return c
}

// Linear scans from index 0 and stops at the first match. An empty array
// yields a start step and an explicit empty terminal step.
func Linear(input []int, target int) (step.Sequence, error) {
	a := copyInts(input)
	n := len(a)
	var steps step.Sequence
	add := func(op step.Op, action string, current int, found bool, highlight ...int) {
		steps = append(steps, step.LinearSearchStep{
			Base:    step.Base{Array: copyInts(a), Action: action, Op: op, Highlight: highlight},
			Current: current,
			Found:   found,
			Target:  target,
		})
	}

	add(step.OpStart, fmt.Sprintf("Linear search started for target %d", target), step.NoIndex, false)
	if n == 0 {
		add(step.OpNotFound, fmt.Sprintf("Array is empty, target %d not found", target), step.NoIndex, false)
		return steps, nil
	}

	for i := 0; i < n; i++ {
		add(step.OpCompare, fmt.Sprintf("Comparing element at index %d: value is %d", i, a[i]), i, false, i)
		if a[i] == target {
			add(step.OpFound, fmt.Sprintf("Target %d found at index %d", target, i), i, true, i)
			return steps, nil
		}
		add(step.OpAdvance, fmt.Sprintf("Value %d does not match %d, moving to next index", a[i], target), i, false)
	}

	add(step.OpNotFound, fmt.Sprintf("Target %d not found after checking all elements", target), n-1, false)
	return steps, nil
}

// Binary runs the classic low/high loop. The input must be non-decreasing;
// on unsorted input the steps are well formed but the outcome is
// meaningless. input.PrepareForBinarySearch sorts and reports a warning.
func Binary(input []int, target int) (step.Sequence, error) {
	a := copyInts(input)
	var steps step.Sequence
	low, high, mid := 0, len(a)-1, step.NoIndex
	add := func(op step.Op, action string, found bool, highlight ...int) {
		steps = append(steps, step.BinarySearchStep{
			Base:   step.Base{Array: copyInts(a), Action: action, Op: op, Highlight: highlight},
			Low:    low,
			High:   high,
			Mid:    mid,
			Found:  found,
			Target: target,
		})
	}

	add(step.OpStart, fmt.Sprintf("Binary search started for target %d, array must be sorted", target), false)
	if len(a) == 0 {
		add(step.OpNotFound, fmt.Sprintf("Array is empty, target %d not found", target), false)
		return steps, nil
	}

	for low <= high {
		mid = low + (high-low)/2
		add(step.OpCheck, fmt.Sprintf("Checking mid element at index %d: value is %d", mid, a[mid]), false, mid)

		switch {
		case a[mid] == target:
			add(step.OpFound, fmt.Sprintf("Target %d found at index %d", target, mid), true, mid)
			return steps, nil
		case a[mid] < target:
			low = mid + 1
			add(step.OpNarrow, fmt.Sprintf("Target %d is greater than %d, searching right half (low=%d)", target, a[mid], low), false)
		default:
			high = mid - 1
			add(step.OpNarrow, fmt.Sprintf("Target %d is less than %d, searching left half (high=%d)", target, a[mid], high), false)
		}
	}

	mid = step.NoIndex
	add(step.OpNotFound, fmt.Sprintf("Target %d not found, low (%d) > high (%d)", target, low, high), false)
	return steps, nil
}
