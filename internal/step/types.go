package step

import "sort"

// NoIndex marks an absent optional index (pivot, mid, cursor).
const NoIndex = -1

type Kind string

const (
	KindSort   Kind = "sort"
	KindLinear Kind = "linear"
	KindBinary Kind = "binary"
	KindTree   Kind = "tree"
)

// Mode selects how a record is rendered.
type Mode int

const (
	ModeSorting Mode = iota
	ModeLinearSearch
	ModeBinarySearch
	ModeTree
)

func (m Mode) String() string {
	switch m {
	case ModeSorting:
		return "sorting"
	case ModeLinearSearch:
		return "linear-search"
	case ModeBinarySearch:
		return "binary-search"
	case ModeTree:
		return "tree"
	}
	return "unknown"
}

// ModeFor returns the render mode matching a record kind.
func ModeFor(k Kind) Mode {
	switch k {
	case KindLinear:
		return ModeLinearSearch
	case KindBinary:
		return ModeBinarySearch
	case KindTree:
		return ModeTree
	}
	return ModeSorting
}

// Op classifies what a step represents. Statistics count steps by Op.
type Op string

const (
	OpStart      Op = "start"
	OpPass       Op = "pass"
	OpSelect     Op = "select"
	OpCompare    Op = "compare"
	OpSwap       Op = "swap"
	OpNoSwap     Op = "no_swap"
	OpNewMin     Op = "new_min"
	OpShift      Op = "shift"
	OpPlace      Op = "place"
	OpFinalize   Op = "finalize"
	OpSplit      Op = "split"
	OpMergeStart Op = "merge_start"
	OpMergeDone  Op = "merge_done"
	OpPivot      Op = "pivot"
	OpReset      Op = "reset"
	OpCheck      Op = "check"
	OpNarrow     Op = "narrow"
	OpAdvance    Op = "advance"
	OpFound      Op = "found"
	OpNotFound   Op = "not_found"
	OpVisit      Op = "visit"
	OpMove       Op = "move"
	OpInsert     Op = "insert"
	OpRemove     Op = "remove"
	OpComplete   Op = "complete"
)

// Base is shared by every record variant.
type Base struct {
	Array     []int
	Action    string
	Op        Op
	Highlight []int
}

// Record is one immutable snapshot in a step sequence.
type Record interface {
	Common() Base
	Kind() Kind
}

// SortStep is emitted by sorting generators.
type SortStep struct {
	Base
	Sorted IndexSet
	// Pivot is the quicksort pivot, the running selection sort minimum or the
	// insertion sort key. NoIndex when unused.
	Pivot int
	// Gap is the active shell sort gap, 0 outside shell sort passes.
	Gap int
}

func (s SortStep) Common() Base { return s.Base }
func (s SortStep) Kind() Kind   { return KindSort }

type LinearSearchStep struct {
	Base
	Current int
	Found   bool
	Target  int
}

func (s LinearSearchStep) Common() Base { return s.Base }
func (s LinearSearchStep) Kind() Kind   { return KindLinear }

type BinarySearchStep struct {
	Base
	Low, High, Mid int
	Found          bool
	Target         int
}

func (s BinarySearchStep) Common() Base { return s.Base }
func (s BinarySearchStep) Kind() Kind   { return KindBinary }

// Width is the size of the remaining candidate window.
func (s BinarySearchStep) Width() int { return s.High - s.Low }

// TreeStep is emitted by binary search tree operations. Array holds the
// in-order values of the tree at that instant.
type TreeStep struct {
	Base
	Value int
}

func (s TreeStep) Common() Base { return s.Base }
func (s TreeStep) Kind() Kind   { return KindTree }

// Sequence is the complete ordered output of one generator invocation.
type Sequence []Record

func (s Sequence) Len() int { return len(s) }

// Last returns the terminal record, or nil for an empty sequence.
func (s Sequence) Last() Record {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// IndexSet is an ascending, duplicate-free set of array indices.
type IndexSet []int

func NewIndexSet(idx ...int) IndexSet {
	s := make(IndexSet, 0, len(idx))
	for _, i := range idx {
		s = s.With(i)
	}
	return s
}

// FullRange returns {0, ..., n-1}.
func FullRange(n int) IndexSet {
	s := make(IndexSet, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func (s IndexSet) Len() int { return len(s) }

func (s IndexSet) Contains(i int) bool {
	k := sort.SearchInts(s, i)
	return k < len(s) && s[k] == i
}

// With returns a copy of s including i. The receiver is never modified.
func (s IndexSet) With(i int) IndexSet {
	k := sort.SearchInts(s, i)
	if k < len(s) && s[k] == i {
		return s
	}
	out := make(IndexSet, 0, len(s)+1)
	out = append(out, s[:k]...)
	out = append(out, i)
	return append(out, s[k:]...)
}

// Covers reports whether every index of o is in s.
func (s IndexSet) Covers(o IndexSet) bool {
	for _, i := range o {
		if !s.Contains(i) {
			return false
		}
	}
	return true
}
