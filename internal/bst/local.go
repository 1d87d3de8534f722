package bst

import (
	"context"

	"github.com/san-kum/sortviz/internal/step"
)

// Operator applies one operation and carries the resulting tree.
type Operator interface {
	Do(ctx context.Context, op Operation, value int) (step.Sequence, error)
	Tree() *Node
}

var (
	_ Operator = (*Client)(nil)
	_ Operator = (*Local)(nil)
)

// Local applies operations in process with the same value bounds the
// service enforces.
type Local struct {
	tree     *Node
	min, max int
}

func NewLocal(min, max int) *Local {
	return &Local{min: min, max: max}
}

func (l *Local) Tree() *Node { return l.tree }

func (l *Local) Reset() { l.tree = nil }

func (l *Local) Do(_ context.Context, op Operation, value int) (step.Sequence, error) {
	if err := ValidateValue(value, l.min, l.max); err != nil {
		return nil, err
	}
	seq, tree, err := Apply(l.tree, op, value)
	if err != nil {
		return nil, err
	}
	l.tree = tree
	return seq, nil
}
