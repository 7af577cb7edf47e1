package heap_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/heap"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFindMin(t *testing.T) {
	h := heap.New[string](heap.MinOrder, nil)
	_, err := h.Insert(5, "five")
	require.NoError(t, err)
	_, err = h.Insert(2, "two")
	require.NoError(t, err)
	_, err = h.Insert(9, "nine")
	require.NoError(t, err)

	min, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, "two", min.Value())
	require.Equal(t, 3, h.Count())
}

func TestDeleteMinOrdering(t *testing.T) {
	h := heap.New[int](heap.MinOrder, nil)
	vals := []float64{5, 1, 4, 2, 8, 0, 3}
	for _, v := range vals {
		_, err := h.Insert(v, int(v))
		require.NoError(t, err)
	}

	var out []float64
	for !h.IsEmpty() {
		m, ok := h.DeleteMin()
		require.True(t, ok)
		out = append(out, m.Key())
	}

	require.Equal(t, []float64{0, 1, 2, 3, 4, 5, 8}, out)
}

func TestDecreaseKeyBubblesUp(t *testing.T) {
	h := heap.New[string](heap.MinOrder, nil)
	_, _ = h.Insert(10, "a")
	hb, _ := h.Insert(20, "b")
	_, _ = h.Insert(30, "c")

	require.NoError(t, hb.DecreaseKey(1))
	min, ok := h.FindMin()
	require.True(t, ok)
	require.Equal(t, "b", min.Value())
}

func TestDecreaseKeyRejectsIncrease(t *testing.T) {
	h := heap.New[string](heap.MinOrder, nil)
	ha, _ := h.Insert(10, "a")
	require.ErrorIs(t, ha.DecreaseKey(20), heap.ErrKeyNotDecreased)
}

func TestDeleteThenInvalidHandle(t *testing.T) {
	h := heap.New[string](heap.MinOrder, nil)
	ha, _ := h.Insert(10, "a")
	require.NoError(t, ha.Delete())
	require.ErrorIs(t, ha.Delete(), heap.ErrInvalidHandle)
	require.ErrorIs(t, ha.DecreaseKey(1), heap.ErrInvalidHandle)
	require.Equal(t, 0, h.Count())
}

func TestMeldHandlesSurvive(t *testing.T) {
	reg := heap.NewRegistry[string]()
	a := heap.New[string](heap.MinOrder, reg)
	b := heap.New[string](heap.MinOrder, reg)

	ha, _ := a.Insert(5, "a")
	hb, _ := b.Insert(3, "b")

	require.NoError(t, a.Meld(b))
	require.Equal(t, 2, a.Count())

	// Handle from the absorbed heap b still decreases correctly against a.
	require.NoError(t, hb.DecreaseKey(1))
	min, ok := a.FindMin()
	require.True(t, ok)
	require.Equal(t, "b", min.Value())

	// Handle from the surviving heap a still deletes correctly.
	require.NoError(t, ha.Delete())
	require.Equal(t, 1, a.Count())

	// b itself can no longer accept inserts.
	_, err := b.Insert(1, "x")
	require.ErrorIs(t, err, heap.ErrHeapMelded)
}

func TestMeldChainSurvivesThroughSecondMeld(t *testing.T) {
	reg := heap.NewRegistry[string]()
	a := heap.New[string](heap.MinOrder, reg)
	b := heap.New[string](heap.MinOrder, reg)
	c := heap.New[string](heap.MinOrder, reg)

	hb, _ := b.Insert(7, "b")
	_, _ = a.Insert(4, "a")
	_, _ = c.Insert(9, "c")

	require.NoError(t, a.Meld(b)) // b absorbed into a
	require.NoError(t, a.Meld(c)) // c absorbed into a

	require.NoError(t, hb.DecreaseKey(1))
	min, ok := a.FindMin()
	require.True(t, ok)
	require.Equal(t, "b", min.Value())
}

func TestMeldComparatorMismatch(t *testing.T) {
	a := heap.New[string](heap.MinOrder, nil)
	b := heap.New[string](heap.MaxOrder, nil)
	require.ErrorIs(t, a.Meld(b), heap.ErrComparatorMismatch)
}

func TestMaxOrder(t *testing.T) {
	h := heap.New[int](heap.MaxOrder, nil)
	_, _ = h.Insert(1, 1)
	_, _ = h.Insert(5, 5)
	_, _ = h.Insert(3, 3)

	m, ok := h.DeleteMin()
	require.True(t, ok)
	require.Equal(t, 5, m.Value())
}

func TestClear(t *testing.T) {
	h := heap.New[int](heap.MinOrder, nil)
	_, _ = h.Insert(1, 1)
	_, _ = h.Insert(2, 2)
	h.Clear()
	require.True(t, h.IsEmpty())
	require.Equal(t, 0, h.Count())
}
