package assoc

// maxGrowthAttempts caps how many growth steps one rehash may take. Keys whose
// raw hashes collide outright land in the same slots at every capacity, so
// past this point the capacity is held and the hash pair is reseeded instead.
const maxGrowthAttempts = 4

// overloaded reports whether either table has crossed the load factor.
func (a *Array) overloaded() bool {
	return a.primary.overloaded(a.opts.loadFactor) || a.secondary.overloaded(a.opts.loadFactor)
}

// rehash rebuilds both tables at a larger capacity and moves every resident
// into them, followed by pending when it is non-nil. The rebuild is retried
// one growth step further each time a placement exhausts its eviction bound
// or the result would still be over the load factor, up to
// maxGrowthAttempts. Later attempts keep the capacity and switch to a fresh
// pair of seeded hashes. The old tables and engine are left untouched until a
// rebuild succeeds.
func (a *Array) rehash(pending *entry) {
	oldPrimary, oldSecondary := a.primary, a.secondary
	primaryCap, secondaryCap := oldPrimary.capacity(), oldSecondary.capacity()
	eng, reseeded := a.engine, false

	for attempt := 1; ; attempt++ {
		if attempt <= maxGrowthAttempts {
			primaryCap = a.opts.sizing.grow(primaryCap, a.opts.growthFactor)
			if a.opts.strategy == StrategyCuckoo {
				secondaryCap = a.opts.sizing.grow(secondaryCap, a.opts.growthFactor)
			}
		} else {
			seed := uint64(attempt) << 1
			eng = a.engine.withHashes(XXHashSeeded(seed), XXHashSeeded(seed|1))
			reseeded = true
			a.opts.logger.LogReseed(primaryCap, secondaryCap, attempt)
		}

		primary, secondary := newTable(primaryCap), newTable(secondaryCap)
		if !a.migrate(eng, primary, secondary, pending, oldPrimary, oldSecondary) {
			continue
		}

		a.primary, a.secondary, a.engine = primary, secondary, eng
		a.rehashes++
		if reseeded {
			a.reseeds++
		}
		a.opts.logger.LogRehash(
			oldPrimary.capacity(), oldSecondary.capacity(),
			primaryCap, secondaryCap,
			a.Count(), attempt,
		)
		return
	}
}

// migrate places every resident of the old tables, in table then slot order,
// and then pending into the fresh pair using eng. It reports false if
// anything could not be placed or a fresh table ends up overloaded.
func (a *Array) migrate(eng engine, primary, secondary *table, pending *entry, old ...*table) bool {
	ok := true
	for _, t := range old {
		t.forEach(func(_ int, e *entry) bool {
			out := eng.place(primary, secondary, e)
			a.displacements += out.moves
			ok = out.result != exhausted
			return ok
		})
		if !ok {
			return false
		}
	}
	if pending != nil {
		out := eng.place(primary, secondary, pending)
		a.displacements += out.moves
		if out.result == exhausted {
			return false
		}
	}
	return !primary.overloaded(a.opts.loadFactor) && !secondary.overloaded(a.opts.loadFactor)
}
