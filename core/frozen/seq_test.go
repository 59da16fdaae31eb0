package frozen_test

import (
	"cmp"
	"testing"

	"pokemasdb/core/frozen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq_MutatorsBeforeFreeze(t *testing.T) {
	s := frozen.New[int]()
	require.NoError(t, s.Append(3))
	require.NoError(t, s.AppendAll(1, 2))
	require.NoError(t, s.Insert(0, 9))
	assert.Equal(t, []int{9, 3, 1, 2}, s.Slice())

	require.NoError(t, s.Set(1, 4))
	v, err := s.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	require.NoError(t, s.Sort(cmp.Compare[int]))
	assert.Equal(t, []int{1, 2, 4}, s.Slice())

	require.NoError(t, s.Swap(0, 2))
	assert.Equal(t, []int{4, 2, 1}, s.Slice())

	n, err := s.RemoveFunc(func(i int) bool { return i%2 == 0 })
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1}, s.Slice())

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
}

func TestSeq_IndexErrors(t *testing.T) {
	s := frozen.Of("a")

	assert.ErrorIs(t, s.Insert(2, "b"), frozen.ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Set(-1, "b"), frozen.ErrIndexOutOfRange)
	_, err := s.RemoveAt(1)
	assert.ErrorIs(t, err, frozen.ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Swap(0, 5), frozen.ErrIndexOutOfRange)

	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestSeq_FreezeRejectsEveryMutator(t *testing.T) {
	s := frozen.Of(1, 2, 3)
	s.Freeze()
	s.Freeze()
	assert.True(t, s.Frozen())

	assert.ErrorIs(t, s.Append(4), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.AppendAll(4, 5), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.Insert(0, 4), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.Set(0, 4), frozen.ErrAlreadyFrozen)
	_, err := s.RemoveAt(0)
	assert.ErrorIs(t, err, frozen.ErrAlreadyFrozen)
	_, err = s.RemoveFunc(func(int) bool { return true })
	assert.ErrorIs(t, err, frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.Clear(), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.Sort(cmp.Compare[int]), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, s.Swap(0, 1), frozen.ErrAlreadyFrozen)

	assert.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestSeq_Filled(t *testing.T) {
	s := frozen.Filled(3, "?")
	assert.Equal(t, []string{"?", "?", "?"}, s.Slice())
	assert.Equal(t, 0, frozen.Filled(-1, 0).Len())
}

func TestSeq_SliceIsACopy(t *testing.T) {
	s := frozen.Of(1, 2)
	out := s.Slice()
	out[0] = 100

	v, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSeq_Iteration(t *testing.T) {
	s := frozen.Of("x", "y", "z")

	var idx []int
	for i := range s.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	var vals []string
	for v := range s.Values() {
		if v == "z" {
			break
		}
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"x", "y"}, vals)

	assert.True(t, s.ContainsFunc(func(v string) bool { return v == "y" }))
}

func TestSeq_MarshalJSON(t *testing.T) {
	data, err := frozen.New[string]().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	data, err = frozen.Of(1, 2).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(data))
}

func TestSeq_NilIsEmpty(t *testing.T) {
	var s *frozen.Seq[int]
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Slice())
	for range s.Values() {
		t.Fatal("nil sequence yielded a value")
	}
}
