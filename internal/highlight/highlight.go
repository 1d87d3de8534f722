// Package highlight derives per-element render classes from a step record.
package highlight

import "github.com/san-kum/sortviz/internal/step"

type Class int

const (
	Default Class = iota
	Found
	Current
	Mid
	InRange
	Excluded
	Sorted
	Pivot
	Highlighted
)

func (c Class) String() string {
	switch c {
	case Found:
		return "found"
	case Current:
		return "current"
	case Mid:
		return "mid"
	case InRange:
		return "in-range"
	case Excluded:
		return "excluded"
	case Sorted:
		return "sorted"
	case Pivot:
		return "pivot"
	case Highlighted:
		return "highlighted"
	}
	return "default"
}

// Resolve assigns one class per array element. The first matching rule wins:
//
//  1. found index (either search mode)
//  2. linear search cursor
//  3. binary search mid
//  4. binary search window vs excluded (binary mode only)
//  5. sorted, pivot, highlighted (sorting mode only)
//
// Tree mode colors the highlighted indices. Resolve does not retain or
// modify r.
func Resolve(r step.Record, mode step.Mode) []Class {
	if r == nil {
		return nil
	}
	base := r.Common()
	classes := make([]Class, len(base.Array))
	marked := indexSet(base.Highlight)

	linear, isLinear := r.(step.LinearSearchStep)
	binary, isBinary := r.(step.BinarySearchStep)
	sorting, isSort := r.(step.SortStep)

	for i := range classes {
		switch {
		case isLinear && linear.Found && i == linear.Current,
			isBinary && binary.Found && i == binary.Mid:
			classes[i] = Found
		case isLinear && i == linear.Current:
			classes[i] = Current
		case isBinary && i == binary.Mid:
			classes[i] = Mid
		case mode == step.ModeBinarySearch && isBinary:
			if i >= binary.Low && i <= binary.High {
				classes[i] = InRange
			} else {
				classes[i] = Excluded
			}
		case mode == step.ModeSorting && isSort:
			switch {
			case sorting.Sorted.Contains(i):
				classes[i] = Sorted
			case i == sorting.Pivot:
				classes[i] = Pivot
			case marked[i]:
				classes[i] = Highlighted
			}
		case mode == step.ModeTree && marked[i]:
			classes[i] = Highlighted
		}
	}
	return classes
}

func indexSet(idx []int) map[int]bool {
	m := make(map[int]bool, len(idx))
	for _, i := range idx {
		m[i] = true
	}
	return m
}
