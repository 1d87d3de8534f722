package step

import (
	"encoding/json"
	"fmt"
)

// Wire is the canonical JSON shape of a step record. Family specific fields
// are omitted when they do not apply.
type Wire struct {
	Kind             Kind   `json:"kind"`
	Array            []int  `json:"array"`
	Action           string `json:"action"`
	Op               Op     `json:"op,omitempty"`
	HighlightIndices []int  `json:"highlightIndices"`
	SortedIndices    []int  `json:"sortedIndices,omitempty"`
	PivotIndex       *int   `json:"pivotIndex,omitempty"`
	Gap              *int   `json:"gap,omitempty"`
	Low              *int   `json:"low,omitempty"`
	High             *int   `json:"high,omitempty"`
	Mid              *int   `json:"mid,omitempty"`
	CurrentIndex     *int   `json:"currentIndex,omitempty"`
	Found            *bool  `json:"found,omitempty"`
	SearchTarget     *int   `json:"searchTarget,omitempty"`
	Value            *int   `json:"value,omitempty"`
}

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

func orEmpty(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

func ToWire(r Record) Wire {
	b := r.Common()
	w := Wire{
		Kind:             r.Kind(),
		Array:            orEmpty(b.Array),
		Action:           b.Action,
		Op:               b.Op,
		HighlightIndices: orEmpty(b.Highlight),
	}
	switch s := r.(type) {
	case SortStep:
		w.SortedIndices = []int(s.Sorted)
		if s.Pivot != NoIndex {
			w.PivotIndex = intp(s.Pivot)
		}
		if s.Gap > 0 {
			w.Gap = intp(s.Gap)
		}
	case LinearSearchStep:
		w.CurrentIndex = intp(s.Current)
		w.Found = boolp(s.Found)
		w.SearchTarget = intp(s.Target)
	case BinarySearchStep:
		w.Low, w.High, w.Mid = intp(s.Low), intp(s.High), intp(s.Mid)
		w.Found = boolp(s.Found)
		w.SearchTarget = intp(s.Target)
	case TreeStep:
		w.Value = intp(s.Value)
	}
	return w
}

func deref(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// inferKind guesses the family of a record sent without a kind tag.
func (w Wire) inferKind() Kind {
	switch {
	case w.Low != nil || w.High != nil || w.Mid != nil:
		return KindBinary
	case w.CurrentIndex != nil:
		return KindLinear
	case w.Value != nil:
		return KindTree
	}
	return KindSort
}

func FromWire(w Wire) (Record, error) {
	if w.Action == "" {
		return nil, fmt.Errorf("step: record has empty action")
	}
	base := Base{Array: w.Array, Action: w.Action, Op: w.Op, Highlight: w.HighlightIndices}
	kind := w.Kind
	if kind == "" {
		kind = w.inferKind()
	}
	found := w.Found != nil && *w.Found
	switch kind {
	case KindSort:
		return SortStep{
			Base:   base,
			Sorted: NewIndexSet(w.SortedIndices...),
			Pivot:  deref(w.PivotIndex, NoIndex),
			Gap:    deref(w.Gap, 0),
		}, nil
	case KindLinear:
		return LinearSearchStep{
			Base:    base,
			Current: deref(w.CurrentIndex, NoIndex),
			Found:   found,
			Target:  deref(w.SearchTarget, 0),
		}, nil
	case KindBinary:
		return BinarySearchStep{
			Base:   base,
			Low:    deref(w.Low, 0),
			High:   deref(w.High, len(w.Array)-1),
			Mid:    deref(w.Mid, NoIndex),
			Found:  found,
			Target: deref(w.SearchTarget, 0),
		}, nil
	case KindTree:
		return TreeStep{Base: base, Value: deref(w.Value, 0)}, nil
	}
	return nil, fmt.Errorf("step: unknown record kind %q", kind)
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	out := make([]Wire, len(s))
	for i, r := range s {
		out[i] = ToWire(r)
	}
	return json.Marshal(out)
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw []Wire
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	seq := make(Sequence, 0, len(raw))
	for i, w := range raw {
		r, err := FromWire(w)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		seq = append(seq, r)
	}
	*s = seq
	return nil
}
