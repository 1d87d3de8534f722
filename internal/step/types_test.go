package step

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIndexSet_With(t *testing.T) {
	s := NewIndexSet(3, 1, 3, 0)
	if len(s) != 3 {
		t.Fatalf("expected 3 indices, got %v", s)
	}
	for i, want := range []int{0, 1, 3} {
		if s[i] != want {
			t.Errorf("index %d: expected %d, got %d", i, want, s[i])
		}
	}

	grown := s.With(2)
	if len(s) != 3 {
		t.Error("With modified the receiver")
	}
	if !grown.Contains(2) || !grown.Covers(s) {
		t.Errorf("expected %v to cover %v plus 2", grown, s)
	}
	if same := grown.With(2); len(same) != len(grown) {
		t.Error("With added a duplicate index")
	}
}

func TestFullRange(t *testing.T) {
	s := FullRange(4)
	if len(s) != 4 || s[0] != 0 || s[3] != 3 {
		t.Errorf("unexpected range %v", s)
	}
	if len(FullRange(0)) != 0 {
		t.Error("expected empty range for n=0")
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		kind Kind
		mode Mode
	}{
		{KindSort, ModeSorting},
		{KindLinear, ModeLinearSearch},
		{KindBinary, ModeBinarySearch},
		{KindTree, ModeTree},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.kind); got != tt.mode {
			t.Errorf("ModeFor(%s) = %v, want %v", tt.kind, got, tt.mode)
		}
	}
}

func TestSequenceJSON(t *testing.T) {
	seq := Sequence{
		SortStep{Base: Base{Array: []int{2, 1}, Action: "pivot", Op: OpPivot}, Pivot: 1, Sorted: NewIndexSet()},
		SortStep{Base: Base{Array: []int{1, 2}, Action: "shell", Op: OpPass}, Pivot: NoIndex, Gap: 2, Sorted: NewIndexSet(0)},
		LinearSearchStep{Base: Base{Array: []int{4}, Action: "cmp", Highlight: []int{0}}, Current: 0, Target: 4},
		BinarySearchStep{Base: Base{Array: []int{1, 3}, Action: "mid"}, Low: 0, High: 1, Mid: 0, Found: true, Target: 1},
		TreeStep{Base: Base{Array: []int{5}, Action: "Visiting", Highlight: []int{0}}, Value: 5},
	}

	data, err := json.Marshal(seq)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Sequence
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(back) != len(seq) {
		t.Fatalf("expected %d records, got %d", len(seq), len(back))
	}

	if s := back[0].(SortStep); s.Pivot != 1 || s.Gap != 0 {
		t.Errorf("unexpected sort step %+v", s)
	}
	if s := back[1].(SortStep); s.Pivot != NoIndex || s.Gap != 2 || !s.Sorted.Contains(0) {
		t.Errorf("unexpected shell step %+v", s)
	}
	if s := back[3].(BinarySearchStep); !s.Found || s.Mid != 0 || s.High != 1 {
		t.Errorf("unexpected binary step %+v", s)
	}
	if s := back[4].(TreeStep); s.Value != 5 {
		t.Errorf("unexpected tree step %+v", s)
	}
}

func TestFromWire_InfersKind(t *testing.T) {
	low, high := 0, 3
	r, err := FromWire(Wire{Action: "window", Array: []int{1, 2, 3, 4}, Low: &low, High: &high})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := r.(BinarySearchStep)
	if !ok {
		t.Fatalf("expected binary search step, got %T", r)
	}
	if b.Mid != NoIndex {
		t.Errorf("expected absent mid, got %d", b.Mid)
	}

	value := 7
	r, err = FromWire(Wire{Action: "Visiting", Value: &value})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind() != KindTree {
		t.Errorf("expected tree kind, got %s", r.Kind())
	}
}

func TestFromWire_Rejects(t *testing.T) {
	if _, err := FromWire(Wire{Kind: KindSort}); err == nil {
		t.Error("expected error for empty action")
	}
	if _, err := FromWire(Wire{Kind: "heap", Action: "x"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "array", Reason: "no values", Wrapped: ErrEmptyInput}
	if err.Error() != "invalid array: no values" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrEmptyInput) {
		t.Error("expected ValidationError to unwrap to ErrEmptyInput")
	}

	var w error = &PreconditionWarning{Message: "sorted automatically"}
	if !errors.Is(w, ErrUnsortedInput) {
		t.Error("expected warning to unwrap to ErrUnsortedInput")
	}
}
