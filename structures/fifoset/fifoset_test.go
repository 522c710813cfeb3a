package fifoset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Push(t *testing.T) {
	var s Set[string]
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Push("a"))
	assert.True(t, s.Push("b"))
	assert.False(t, s.Push("a"), "Re-adding a value should be a no-op")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("c"))
	assert.Equal(t, []string{"a", "b"}, s.Values(), "Original position should be kept on re-add")
}

func TestSet_Remove(t *testing.T) {
	s := New(1, 2, 3)
	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	assert.Equal(t, []int{1, 3}, s.Values())
	assert.True(t, s.Push(2), "Removed value should be addable again")
	assert.Equal(t, []int{1, 3, 2}, s.Values())
}

func TestSet_Drain(t *testing.T) {
	s := New("x", "y", "x", "z")
	assert.Equal(t, []string{"x", "y", "z"}, s.Drain())
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Values())
	assert.True(t, s.Push("x"), "Drained set should accept values again")
}

func TestSet_Clear(t *testing.T) {
	s := New(1, 2)
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
}

func TestSet_All(t *testing.T) {
	s := New(3, 1, 2)
	var got []int
	for v := range s.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 1, 2}, got)
	assert.Equal(t, 3, s.Len(), "Iteration should not drain the set")
}
