package assoc

// doubleHash is open addressing over the primary table alone. The probe walk
// starts at h1 and moves backwards by a key-specific step derived from h2;
// the secondary table is never touched.
type doubleHash struct {
	mode   keyMode
	h1, h2 HashFunc
}

func (d *doubleHash) withHashes(h1, h2 HashFunc) engine {
	next := *d
	next.h1, next.h2 = h1, h2
	return &next
}

// start returns the first slot and the step for key, or ok=false for an
// empty table.
func (d *doubleHash) start(t *table, key []byte) (first, step int, ok bool) {
	n := t.capacity()
	if n == 0 {
		return 0, 0, false
	}
	first = int(d.h1(key) % uint64(n))
	step = 1
	if n > 1 {
		step = int(d.h2(key)%uint64(n-1)) + 1
	}
	return first, step, true
}

// nextProbe steps backwards from i by step, wrapping below zero.
func nextProbe(capacity, i, step int) int {
	if step > i {
		return capacity - (step - i)
	}
	return i - step
}

func (d *doubleHash) find(primary, _ *table, key []byte) (*entry, bool) {
	i, step, ok := d.start(primary, key)
	if !ok {
		return nil, false
	}
	first := i
	for {
		e, ok := primary.get(i)
		if !ok {
			return nil, false
		}
		if d.mode.match(e, key) {
			return e, true
		}
		i = nextProbe(primary.capacity(), i, step)
		if i == first {
			return nil, false
		}
	}
}

func (d *doubleHash) place(primary, _ *table, e *entry) outcome {
	i, step, ok := d.start(primary, e.key)
	if !ok {
		return outcome{result: exhausted, pending: e}
	}
	first := i
	for moves := 0; ; moves++ {
		resident, ok := primary.get(i)
		if !ok {
			primary.put(i, e)
			return outcome{result: placed, moves: moves}
		}
		if d.mode.match(resident, e.key) {
			resident.value = e.value
			return outcome{result: updated, moves: moves}
		}
		i = nextProbe(primary.capacity(), i, step)
		if i == first {
			return outcome{result: exhausted, pending: e, moves: moves}
		}
	}
}
