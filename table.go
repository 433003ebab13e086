package assoc

import "github.com/RoaringBitmap/roaring/v2"

// table is a fixed-capacity slot array. Each slot is empty or owns exactly
// one entry. Occupied slot indices are mirrored in a bitmap so resident
// entries can be walked in index order without scanning empty slots.
//
// Every helper rejects out-of-range indices and nil inputs by returning false
// instead of faulting.
type table struct {
	slots    []*entry
	live     int
	occupied *roaring.Bitmap
}

func newTable(capacity int) *table {
	if capacity < 0 {
		capacity = 0
	}
	return &table{
		slots:    make([]*entry, capacity),
		occupied: roaring.New(),
	}
}

// capacity returns the number of slots.
func (t *table) capacity() int {
	if t == nil {
		return 0
	}
	return len(t.slots)
}

// count returns the number of occupied slots.
func (t *table) count() int {
	if t == nil {
		return 0
	}
	return t.live
}

func (t *table) inRange(i int) bool {
	return t != nil && i >= 0 && i < len(t.slots)
}

// get returns the resident of slot i, if any.
func (t *table) get(i int) (*entry, bool) {
	if !t.inRange(i) || t.slots[i] == nil {
		return nil, false
	}
	return t.slots[i], true
}

// put stores e in slot i. It fails if the slot is already taken.
func (t *table) put(i int, e *entry) bool {
	if !t.inRange(i) || e == nil || t.slots[i] != nil {
		return false
	}
	t.slots[i] = e
	t.live++
	t.occupied.Add(uint32(i))
	return true
}

// swap replaces the resident of an occupied slot i with e and returns the
// evicted entry. The live count is unchanged.
func (t *table) swap(i int, e *entry) (*entry, bool) {
	if !t.inRange(i) || e == nil || t.slots[i] == nil {
		return nil, false
	}
	old := t.slots[i]
	t.slots[i] = e
	return old, true
}

// remove empties slot i and returns its former resident.
func (t *table) remove(i int) (*entry, bool) {
	if !t.inRange(i) || t.slots[i] == nil {
		return nil, false
	}
	old := t.slots[i]
	t.slots[i] = nil
	t.live--
	t.occupied.Remove(uint32(i))
	return old, true
}

// overloaded reports whether live exceeds floor(cap*factor).
func (t *table) overloaded(factor float64) bool {
	if t == nil || len(t.slots) == 0 {
		return false
	}
	return t.live > int(float64(len(t.slots))*factor)
}

// forEach calls fn for every occupied slot in ascending index order until fn
// returns false.
func (t *table) forEach(fn func(i int, e *entry) bool) {
	if t == nil {
		return
	}
	it := t.occupied.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if !fn(i, t.slots[i]) {
			return
		}
	}
}

// clear removes every resident, releasing the entries.
func (t *table) clear() {
	if t == nil {
		return
	}
	for _, i := range t.occupied.ToArray() {
		t.remove(int(i))
	}
}
