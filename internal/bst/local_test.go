package bst

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/step"
)

func TestLocal_CarriesTree(t *testing.T) {
	l := NewLocal(1, 999)
	ctx := context.Background()

	for _, v := range []int{50, 30, 70, 60} {
		_, err := l.Do(ctx, Insert, v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{30, 50, 60, 70}, l.Tree().InOrder())

	seq, err := l.Do(ctx, Search, 60)
	require.NoError(t, err)
	assert.Equal(t, ActionFound, seq.Last().Common().Action)

	_, err = l.Do(ctx, Delete, 50)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 60, 70}, l.Tree().InOrder())

	l.Reset()
	assert.Nil(t, l.Tree())
}

func TestLocal_RejectsOutOfRange(t *testing.T) {
	l := NewLocal(1, 999)
	_, err := l.Do(context.Background(), Insert, 10)
	require.NoError(t, err)

	_, err = l.Do(context.Background(), Insert, 1000)
	var ve *step.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "value", ve.Field)
	assert.Equal(t, []int{10}, l.Tree().InOrder())
}
