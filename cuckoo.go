package assoc

// placement is the result of trying to seat an entry.
type placement int

const (
	// placed: the entry took an empty slot; one table's live count grew.
	placed placement = iota
	// updated: the key was already resident and its value was overwritten.
	updated
	// exhausted: the eviction bound was hit. The outcome carries the entry
	// that is still homeless, which may differ from the one passed in.
	exhausted
)

func (p placement) String() string {
	switch p {
	case placed:
		return "placed"
	case updated:
		return "updated"
	case exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

type outcome struct {
	result  placement
	pending *entry
	moves   int
}

// engine resolves collisions over a primary/secondary table pair. The tables
// are passed explicitly so a rehash can drive the same engine against fresh
// tables before swapping them in.
type engine interface {
	place(primary, secondary *table, e *entry) outcome
	find(primary, secondary *table, key []byte) (*entry, bool)
	// withHashes returns a copy of the engine using h1 and h2.
	withHashes(h1, h2 HashFunc) engine
}

type cuckoo struct {
	mode             keyMode
	h1, h2           HashFunc
	minDisplacements int
}

func (c *cuckoo) withHashes(h1, h2 HashFunc) engine {
	next := *c
	next.h1, next.h2 = h1, h2
	return &next
}

func (c *cuckoo) slot(t *table, h HashFunc, key []byte) int {
	n := t.capacity()
	if n == 0 {
		return -1
	}
	return int(h(key) % uint64(n))
}

func (c *cuckoo) bound(primary *table) int {
	return max(ceilLog2(primary.capacity()), c.minDisplacements)
}

func (c *cuckoo) find(primary, secondary *table, key []byte) (*entry, bool) {
	if e, ok := primary.get(c.slot(primary, c.h1, key)); ok && c.mode.match(e, key) {
		return e, true
	}
	if e, ok := secondary.get(c.slot(secondary, c.h2, key)); ok && c.mode.match(e, key) {
		return e, true
	}
	return nil, false
}

func (c *cuckoo) place(primary, secondary *table, e *entry) outcome {
	// A key may only live in one table, so catch it in either candidate slot
	// before evicting anything.
	if old, ok := c.find(primary, secondary, e.key); ok {
		old.value = e.value
		return outcome{result: updated}
	}

	limit := c.bound(primary)
	cur, h := primary, c.h1
	round := 0
	for ; round < limit; round++ {
		i := c.slot(cur, h, e.key)
		if i < 0 {
			break
		}
		resident, ok := cur.get(i)
		if !ok {
			cur.put(i, e)
			return outcome{result: placed, moves: round}
		}
		if c.mode.match(resident, e.key) {
			resident.value = e.value
			return outcome{result: updated, moves: round}
		}
		e, _ = cur.swap(i, e)
		if cur == primary {
			cur, h = secondary, c.h2
		} else {
			cur, h = primary, c.h1
		}
	}
	return outcome{result: exhausted, pending: e, moves: round}
}
