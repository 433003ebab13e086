package assoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableBounds(t *testing.T) {
	tbl := newTable(4)
	e := newEntry([]byte("k"), 1)

	assert.False(t, tbl.put(-1, e))
	assert.False(t, tbl.put(4, e))
	assert.False(t, tbl.put(0, nil))

	_, ok := tbl.get(-1)
	assert.False(t, ok)
	_, ok = tbl.get(4)
	assert.False(t, ok)
	_, ok = tbl.get(0)
	assert.False(t, ok, "empty slot")

	_, ok = tbl.swap(0, e)
	assert.False(t, ok, "swap needs a resident")
	_, ok = tbl.remove(0)
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.count())
}

func TestTableNilReceiver(t *testing.T) {
	var tbl *table

	assert.Equal(t, 0, tbl.capacity())
	assert.Equal(t, 0, tbl.count())
	assert.False(t, tbl.put(0, newEntry(nil, nil)))
	_, ok := tbl.get(0)
	assert.False(t, ok)
	assert.False(t, tbl.overloaded(0.6))
	tbl.clear()
	tbl.forEach(func(int, *entry) bool {
		t.Fatal("nil table has no residents")
		return false
	})
}

func TestTablePutSwapRemove(t *testing.T) {
	tbl := newTable(5)
	a := newEntry([]byte("a"), 1)
	b := newEntry([]byte("b"), 2)

	require.True(t, tbl.put(3, a))
	assert.False(t, tbl.put(3, b), "slot already taken")
	assert.Equal(t, 1, tbl.count())

	old, ok := tbl.swap(3, b)
	require.True(t, ok)
	assert.Same(t, a, old)
	assert.Equal(t, 1, tbl.count())

	got, ok := tbl.get(3)
	require.True(t, ok)
	assert.Same(t, b, got)

	old, ok = tbl.remove(3)
	require.True(t, ok)
	assert.Same(t, b, old)
	assert.Equal(t, 0, tbl.count())
	assert.Equal(t, uint64(0), tbl.occupied.GetCardinality())
}

func TestTableResidentsInSlotOrder(t *testing.T) {
	tbl := newTable(10)
	for _, i := range []int{7, 2, 9, 0} {
		require.True(t, tbl.put(i, newEntry([]byte{byte(i)}, i)))
	}

	var order []int
	tbl.forEach(func(i int, e *entry) bool {
		assert.Equal(t, i, e.value)
		order = append(order, i)
		return true
	})
	assert.Equal(t, []int{0, 2, 7, 9}, order)

	var first []int
	tbl.forEach(func(i int, _ *entry) bool {
		first = append(first, i)
		return len(first) < 2
	})
	assert.Equal(t, []int{0, 2}, first, "stops when fn returns false")
	assert.Equal(t, uint64(tbl.count()), tbl.occupied.GetCardinality())

	tbl.clear()
	assert.Equal(t, 0, tbl.count())
	for i := range tbl.slots {
		assert.Nil(t, tbl.slots[i])
	}
}

func TestTableOverloaded(t *testing.T) {
	tbl := newTable(17)
	for i := 0; i < 10; i++ {
		tbl.put(i, newEntry([]byte{byte(i)}, nil))
	}
	// floor(17*0.6) = 10
	assert.False(t, tbl.overloaded(0.6))

	tbl.put(10, newEntry([]byte{10}, nil))
	assert.True(t, tbl.overloaded(0.6))

	assert.False(t, newTable(0).overloaded(0.6))
}
