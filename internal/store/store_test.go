package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore() *Store[string] {
	return New[string](nil)
}

// TestCountSparse verifies count is max position plus one, not the number of
// populated children.
func TestCountSparse(t *testing.T) {
	s := newTestStore()
	require.Equal(t, 0, s.Count())

	s.Put(5, "x")
	require.Equal(t, 6, s.Count())
	require.Equal(t, 1, s.Len())
}

// TestIndicesAscending verifies iteration order follows position, not
// insertion order.
func TestIndicesAscending(t *testing.T) {
	s := newTestStore()
	s.Put(7, "c")
	s.Put(0, "a")
	s.Put(3, "b")

	require.Equal(t, []int{0, 3, 7}, s.Indices())

	var seen []string
	s.Range(func(_ int, v string) { seen = append(seen, v) })
	require.Equal(t, []string{"a", "b", "c"}, seen)
}

// TestShiftUp verifies insert spacing: every position at or above the pivot
// moves up by one and the pivot slot is left free.
func TestShiftUp(t *testing.T) {
	s := newTestStore()
	s.Put(0, "a")
	s.Put(1, "b")
	s.Put(2, "c")

	s.ShiftUp(1)

	require.Equal(t, []int{0, 2, 3}, s.Indices())
	_, ok := s.Get(1)
	require.False(t, ok)
	v, _ := s.Get(2)
	require.Equal(t, "b", v)
}

// TestRemoveCompacts verifies delete closes the gap and preserves the
// relative order of the survivors.
func TestRemoveCompacts(t *testing.T) {
	s := newTestStore()
	s.Put(0, "a")
	s.Put(1, "b")
	s.Put(4, "c")

	require.True(t, s.Remove(1))

	require.Equal(t, []int{0, 3}, s.Indices())
	v, _ := s.Get(3)
	require.Equal(t, "c", v)

	require.False(t, s.Remove(9))
}

// TestRemoveInvertsShiftUp verifies delete restores the index set an insert
// disturbed, for a sparse starting state.
func TestRemoveInvertsShiftUp(t *testing.T) {
	s := newTestStore()
	s.Put(0, "a")
	s.Put(2, "b")
	s.Put(6, "c")
	before := s.Indices()

	s.ShiftUp(2)
	s.Put(2, "new")
	require.True(t, s.Remove(2))

	require.Equal(t, before, s.Indices())
	v, _ := s.Get(6)
	require.Equal(t, "c", v)
}

// TestMoveForward verifies moving a child to a higher position.
func TestMoveForward(t *testing.T) {
	s := newTestStore()
	for i, v := range []string{"a", "b", "c", "d"} {
		s.Put(i, v)
	}

	require.True(t, s.Move(1, 3))

	var order []string
	s.Range(func(_ int, v string) { order = append(order, v) })
	require.Equal(t, []string{"a", "c", "d", "b"}, order)
}

// TestMoveBackward verifies moving a child to a lower position.
func TestMoveBackward(t *testing.T) {
	s := newTestStore()
	for i, v := range []string{"a", "b", "c", "d"} {
		s.Put(i, v)
	}

	require.True(t, s.Move(3, 1))

	var order []string
	s.Range(func(_ int, v string) { order = append(order, v) })
	require.Equal(t, []string{"a", "d", "b", "c"}, order)
}

// TestMoveOrderPreserving verifies untouched children keep their relative
// order for moves in both directions on a sparse set.
func TestMoveOrderPreserving(t *testing.T) {
	build := func() *Store[string] {
		s := newTestStore()
		s.Put(0, "a")
		s.Put(2, "b")
		s.Put(5, "c")
		s.Put(9, "d")

		return s
	}

	s := build()
	require.True(t, s.Move(2, 7))
	var order []string
	s.Range(func(_ int, v string) { order = append(order, v) })
	require.Equal(t, []string{"a", "c", "b", "d"}, order)

	s = build()
	require.True(t, s.Move(9, 0))
	order = nil
	s.Range(func(_ int, v string) { order = append(order, v) })
	require.Equal(t, []string{"d", "a", "b", "c"}, order)

	require.False(t, s.Move(42, 0))
}

// TestMoveSamePosition verifies a no-op move succeeds and changes nothing.
func TestMoveSamePosition(t *testing.T) {
	s := newTestStore()
	s.Put(0, "a")
	s.Put(1, "b")

	require.True(t, s.Move(1, 1))
	require.Equal(t, []int{0, 1}, s.Indices())
}

// TestOnIndexCallback verifies re-indexing reports every child's new
// position to the owner.
func TestOnIndexCallback(t *testing.T) {
	positions := make(map[string]int)
	s := New[string](func(v string, i int) { positions[v] = i })

	s.Put(0, "a")
	s.Put(1, "b")
	s.Put(2, "c")
	s.ShiftUp(1)

	require.Equal(t, 0, positions["a"])
	require.Equal(t, 2, positions["b"])
	require.Equal(t, 3, positions["c"])
}
