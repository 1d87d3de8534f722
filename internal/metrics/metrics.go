// Package metrics summarizes step sequences and instruments the HTTP service.
package metrics

import (
	"sort"

	"github.com/san-kum/sortviz/internal/step"
)

// Metric observes every record of a sequence in order.
type Metric interface {
	Name() string
	Observe(r step.Record)
	Value() float64
	Reset()
}

// OpCount counts records whose Op is one of ops.
type OpCount struct {
	name  string
	ops   map[step.Op]bool
	count int
}

func NewOpCount(name string, ops ...step.Op) *OpCount {
	m := &OpCount{name: name, ops: make(map[step.Op]bool, len(ops))}
	for _, op := range ops {
		m.ops[op] = true
	}
	return m
}

func (m *OpCount) Name() string { return m.name }

func (m *OpCount) Observe(r step.Record) {
	if m.ops[r.Common().Op] {
		m.count++
	}
}

func (m *OpCount) Value() float64 { return float64(m.count) }
func (m *OpCount) Reset()         { m.count = 0 }

// Steps counts every record.
type Steps struct{ n int }

func (m *Steps) Name() string          { return "steps" }
func (m *Steps) Observe(_ step.Record) { m.n++ }
func (m *Steps) Value() float64        { return float64(m.n) }
func (m *Steps) Reset()                { m.n = 0 }

// FirstSorted is the step index at which the sorted set first became
// non-empty, or -1.
type FirstSorted struct {
	index int
	seen  int
}

func NewFirstSorted() *FirstSorted { return &FirstSorted{index: -1} }

func (m *FirstSorted) Name() string { return "first_sorted" }

func (m *FirstSorted) Observe(r step.Record) {
	if s, ok := r.(step.SortStep); ok && m.index < 0 && s.Sorted.Len() > 0 {
		m.index = m.seen
	}
	m.seen++
}

func (m *FirstSorted) Value() float64 { return float64(m.index) }

func (m *FirstSorted) Reset() {
	m.index = -1
	m.seen = 0
}

// Default returns the metrics reported for every sequence.
func Default() []Metric {
	return []Metric{
		&Steps{},
		NewOpCount("comparisons", step.OpCompare, step.OpCheck),
		NewOpCount("swaps", step.OpSwap),
		NewOpCount("shifts", step.OpShift),
		NewOpCount("placements", step.OpPlace, step.OpInsert),
		NewOpCount("passes", step.OpPass),
		NewFirstSorted(),
	}
}

// Collect runs every metric over seq and returns their values by name.
func Collect(seq step.Sequence, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, r := range seq {
		for _, m := range ms {
			m.Observe(r)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names returns the keys of values in a stable order.
func Names(values map[string]float64) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Progress returns one value per step: the sorted fraction for sorting
// records, the remaining window size for binary search, and the cursor
// position for linear search.
func Progress(seq step.Sequence) []float64 {
	out := make([]float64, len(seq))
	for i, r := range seq {
		n := len(r.Common().Array)
		switch s := r.(type) {
		case step.SortStep:
			if n > 0 {
				out[i] = float64(s.Sorted.Len()) / float64(n)
			}
		case step.BinarySearchStep:
			out[i] = float64(s.Width() + 1)
		case step.LinearSearchStep:
			out[i] = float64(s.Current + 1)
		case step.TreeStep:
			out[i] = float64(n)
		}
	}
	return out
}

// OpHistogram counts records per Op.
func OpHistogram(seq step.Sequence) map[step.Op]int {
	out := make(map[step.Op]int)
	for _, r := range seq {
		out[r.Common().Op]++
	}
	return out
}
