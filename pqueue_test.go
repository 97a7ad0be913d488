package xcontainer_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xcontainer"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueueOrder(t *testing.T) {
	var q xcontainer.PriorityQueue[int]
	q.Insert(1)
	q.Insert(3)
	q.Insert(2)

	for _, want := range []int{1, 2, 3} {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, want, v)
	}

	_, ok := q.Pop()
	require.False(t, ok)
}

func TestPriorityQueuePeek(t *testing.T) {
	var q xcontainer.PriorityQueue[int]
	if _, ok := q.Peek(); ok {
		t.Fatal("peek on an empty queue reported a value")
	}

	q.Insert(2)
	q.Insert(1)
	v, ok := q.Peek()
	if !ok || v != 1 {
		t.Fatal(v, ok)
	}
	require.Equal(t, 2, q.Len())
}

func TestPriorityQueueDrain(t *testing.T) {
	var q xcontainer.PriorityQueue[int]
	for _, v := range []int{5, 1, 4, 1, 3, 9, 2, 6} {
		q.Insert(v)
	}

	got := slices.Collect(q.Drain())
	require.True(t, slices.IsSorted(got))
	require.Len(t, got, 8)
	require.True(t, q.Empty())
}

func TestPriorityQueueNaN(t *testing.T) {
	var q xcontainer.PriorityQueue[float64]
	q.Insert(1)
	q.Insert(2)
	q.Insert(math.NaN())

	// NaN compares >= to nothing, so it ends up at the front.
	v, ok := q.Pop()
	require.True(t, ok)
	require.True(t, math.IsNaN(v))

	require.Equal(t, []float64{1, 2}, slices.Collect(q.Drain()))
}

func BenchmarkPriorityQueueInsert(b *testing.B) {
	var q xcontainer.PriorityQueue[int]
	for i := range b.N {
		q.Insert(i & 0xff)
		if q.Len() > 1024 {
			q.Pop()
		}
	}
}
