package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRemove(t *testing.T) {
	t.Parallel()
	q := New[string](3)
	require.Equal(t, 3, q.Cap())
	require.Equal(t, 0, q.Size())

	q.Add("a")
	q.Add("b")
	require.Equal(t, 2, q.Size())

	require.Equal(t, "a", q.Remove())
	require.Equal(t, "b", q.Remove())
	require.Equal(t, 0, q.Size())
}

func TestWrapAround(t *testing.T) {
	t.Parallel()
	q := New[int](2)
	q.Add(1)
	q.Add(2)
	require.Equal(t, 1, q.Remove())
	q.Add(3)
	require.Equal(t, 2, q.Remove())
	require.Equal(t, 3, q.Remove())
	require.Equal(t, 0, q.Size())
}

func TestZeroCapacity(t *testing.T) {
	t.Parallel()
	q := New[int](0)
	require.Equal(t, 0, q.Cap())
	require.Equal(t, 0, q.Size())
}

func TestFIFOOrder(t *testing.T) {
	t.Parallel()
	q := New[int](5)
	for i := 0; i < 5; i++ {
		q.Add(i)
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, i, q.Remove())
	}
}
