// Package bst implements the binary search tree collaborator: a tree model
// that records one step per visited node, and an HTTP client for a remote
// instance of it.
package bst

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/step"
)

// Node is the tree snapshot exchanged over the wire. A nil root is an
// empty tree.
type Node struct {
	Value int   `json:"value"`
	Left  *Node `json:"left"`
	Right *Node `json:"right"`
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{Value: n.Value, Left: n.Left.Clone(), Right: n.Right.Clone()}
}

// InOrder returns the values in ascending order.
func (n *Node) InOrder() []int {
	var out []int
	var walk func(*Node)
	walk = func(x *Node) {
		if x == nil {
			return
		}
		walk(x.Left)
		out = append(out, x.Value)
		walk(x.Right)
	}
	walk(n)
	return out
}

func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

type Operation string

const (
	Insert Operation = "insert"
	Delete Operation = "delete"
	Search Operation = "search"
)

func ParseOperation(s string) (Operation, error) {
	switch op := Operation(s); op {
	case Insert, Delete, Search:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation: %s", s)
}

// Step actions.
const (
	ActionRootInserted = "Root Inserted"
	ActionVisiting     = "Visiting"
	ActionMoveLeft     = "Move Left"
	ActionMoveRight    = "Move Right"
	ActionInserted     = "Inserted"
	ActionExists       = "Value Already Exists (Skipping)"
	ActionFound        = "Target Found"
	ActionNotFound     = "Value Not Found"
	ActionRemoved      = "Removed"
)

// ValidateValue checks v against the inclusive range [lo, hi].
func ValidateValue(v, lo, hi int) error {
	if v < lo || v > hi {
		return &step.ValidationError{
			Field:  "value",
			Reason: fmt.Sprintf("must be between %d and %d", lo, hi),
		}
	}
	return nil
}

// tracer records tree steps against the live root.
type tracer struct {
	root  *Node
	steps step.Sequence
}

func (t *tracer) emit(op step.Op, action string, value int, visited *Node) {
	values := t.root.InOrder()
	if values == nil {
		values = []int{}
	}
	var highlight []int
	if i := position(t.root, visited); i >= 0 {
		highlight = []int{i}
	}
	t.steps = append(t.steps, step.TreeStep{
		Base:  step.Base{Array: values, Action: action, Op: op, Highlight: highlight},
		Value: value,
	})
}

// position returns the in-order index of target within root, or -1. Nodes
// are matched by identity since a two-child delete briefly holds the
// successor value twice.
func position(root, target *Node) int {
	if target == nil {
		return -1
	}
	idx, found := 0, -1
	var walk func(*Node)
	walk = func(x *Node) {
		if x == nil || found >= 0 {
			return
		}
		walk(x.Left)
		if found >= 0 {
			return
		}
		if x == target {
			found = idx
			return
		}
		idx++
		walk(x.Right)
	}
	walk(root)
	return found
}

// Apply runs op against a copy of root and returns the recorded steps and
// the new root. root itself is never modified.
func Apply(root *Node, op Operation, value int) (step.Sequence, *Node, error) {
	t := &tracer{root: root.Clone()}
	switch op {
	case Insert:
		t.insert(value)
	case Delete:
		t.root = t.delete(t.root, value)
	case Search:
		t.search(value)
	default:
		return nil, nil, fmt.Errorf("unknown operation: %s", op)
	}
	return t.steps, t.root, nil
}

func (t *tracer) insert(value int) {
	if t.root == nil {
		t.root = &Node{Value: value}
		t.emit(step.OpInsert, ActionRootInserted, value, t.root)
		return
	}

	n := t.root
	for {
		t.emit(step.OpVisit, ActionVisiting, n.Value, n)
		switch {
		case value < n.Value:
			t.emit(step.OpMove, ActionMoveLeft, n.Value, n)
			if n.Left == nil {
				n.Left = &Node{Value: value}
				t.emit(step.OpInsert, ActionInserted, value, n.Left)
				return
			}
			n = n.Left
		case value > n.Value:
			t.emit(step.OpMove, ActionMoveRight, n.Value, n)
			if n.Right == nil {
				n.Right = &Node{Value: value}
				t.emit(step.OpInsert, ActionInserted, value, n.Right)
				return
			}
			n = n.Right
		default:
			t.emit(step.OpComplete, ActionExists, n.Value, n)
			return
		}
	}
}

func (t *tracer) delete(n *Node, value int) *Node {
	if n == nil {
		t.emit(step.OpNotFound, ActionNotFound, value, nil)
		return nil
	}
	t.emit(step.OpVisit, ActionVisiting, n.Value, n)

	switch {
	case value < n.Value:
		t.emit(step.OpMove, ActionMoveLeft, n.Value, n)
		n.Left = t.delete(n.Left, value)
	case value > n.Value:
		t.emit(step.OpMove, ActionMoveRight, n.Value, n)
		n.Right = t.delete(n.Right, value)
	default:
		t.emit(step.OpFound, ActionFound, n.Value, n)
		if n.Left == nil || n.Right == nil {
			child := n.Left
			if child == nil {
				child = n.Right
			}
			t.removed(n, child, value)
			return child
		}
		succ := n.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		n.Value = succ.Value
		n.Right = t.delete(n.Right, succ.Value)
	}
	return n
}

// removed emits the removal step once the parent link is replaced. The live
// root is patched first so the snapshot no longer contains the value.
func (t *tracer) removed(n, child *Node, value int) {
	if t.root == n {
		t.root = child
	} else {
		replaceChild(t.root, n, child)
	}
	t.emit(step.OpRemove, ActionRemoved, value, nil)
}

func replaceChild(n, target, child *Node) bool {
	if n == nil {
		return false
	}
	switch {
	case n.Left == target:
		n.Left = child
		return true
	case n.Right == target:
		n.Right = child
		return true
	}
	return replaceChild(n.Left, target, child) || replaceChild(n.Right, target, child)
}

func (t *tracer) search(value int) {
	n := t.root
	for n != nil {
		t.emit(step.OpVisit, ActionVisiting, n.Value, n)
		switch {
		case value == n.Value:
			t.emit(step.OpFound, ActionFound, n.Value, n)
			return
		case value < n.Value:
			t.emit(step.OpMove, ActionMoveLeft, n.Value, n)
			n = n.Left
		default:
			t.emit(step.OpMove, ActionMoveRight, n.Value, n)
			n = n.Right
		}
	}
	t.emit(step.OpNotFound, ActionNotFound, value, nil)
}
