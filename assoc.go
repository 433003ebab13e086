package assoc

import "fmt"

// Array is an associative array from byte keys to opaque values.
//
// Keys are either fixed-width byte strings or NUL-terminated strings, chosen
// at construction. Every key lives in exactly one of two tables. An Array is
// not safe for concurrent use.
type Array struct {
	primary   *table
	secondary *table
	mode      keyMode
	engine    engine
	opts      options

	rehashes      int
	reseeds       int
	displacements int
}

// Stats is a point-in-time snapshot of an Array's shape.
type Stats struct {
	Count             int
	KeySize           int
	KeyMode           string
	Strategy          string
	PrimaryCapacity   int
	SecondaryCapacity int
	PrimaryLive       int
	SecondaryLive     int
	Rehashes          int
	Reseeds           int
	Displacements     int
}

// New creates an empty Array. keySize is the width of every key in bytes, or
// 0 for NUL-terminated string keys.
//
// A negative keySize is a fatal configuration error: the fatal handler is
// invoked with ErrNegativeKeySize, which by default terminates the process.
// New returns nil if a custom handler returns.
func New(keySize int, opts ...Option) *Array {
	o := defaultOptions()
	o.apply(opts)

	if keySize < 0 {
		o.fatal(fmt.Errorf("%w: %d", ErrNegativeKeySize, keySize))
		return nil
	}

	a := &Array{
		mode: keyMode{size: keySize},
		opts: o,
	}
	switch o.strategy {
	case StrategyDoubleHash:
		a.engine = &doubleHash{mode: a.mode, h1: o.primary, h2: o.secondary}
	default:
		a.engine = &cuckoo{mode: a.mode, h1: o.primary, h2: o.secondary, minDisplacements: o.minDisplacements}
	}
	a.allocate()
	return a
}

func (a *Array) allocate() {
	n := a.opts.sizing.initial(a.opts.initialCapacity)
	a.primary = newTable(n)
	if a.opts.strategy == StrategyCuckoo {
		a.secondary = newTable(n)
	} else {
		a.secondary = newTable(0)
	}
}

// Insert stores value under key, replacing the value of an existing equal
// key. The key bytes are copied; value is stored as is.
//
// In fixed-size mode a key of the wrong width is rejected with
// *ErrKeySizeMismatch and the array is left unchanged. In string mode the
// key ends at its first NUL byte, if any.
func (a *Array) Insert(key []byte, value any) error {
	k, ok := a.mode.normalize(key)
	if !ok {
		return &ErrKeySizeMismatch{Expected: a.mode.size, Actual: len(key)}
	}
	if a.primary == nil {
		a.allocate()
	}

	out := a.engine.place(a.primary, a.secondary, newEntry(a.mode.own(k), value))
	a.displacements += out.moves

	switch out.result {
	case exhausted:
		a.rehash(out.pending)
	case placed:
		if a.overloaded() {
			a.rehash(nil)
		}
	}
	return nil
}

// Lookup returns the value stored under key.
func (a *Array) Lookup(key []byte) (any, bool) {
	k, ok := a.mode.normalize(key)
	if !ok || a.primary == nil {
		return nil, false
	}
	e, ok := a.engine.find(a.primary, a.secondary, k)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Count returns the number of distinct keys stored.
func (a *Array) Count() int {
	return a.primary.count() + a.secondary.count()
}

// Free releases every entry and both tables. The Array may be reused
// afterwards; the next Insert starts again from the initial capacity.
func (a *Array) Free() {
	a.primary.clear()
	a.secondary.clear()
	a.primary, a.secondary = nil, nil
}

// Stats returns a snapshot of the array's counters and table shapes.
func (a *Array) Stats() Stats {
	return Stats{
		Count:             a.Count(),
		KeySize:           a.mode.size,
		KeyMode:           a.mode.String(),
		Strategy:          a.opts.strategy.String(),
		PrimaryCapacity:   a.primary.capacity(),
		SecondaryCapacity: a.secondary.capacity(),
		PrimaryLive:       a.primary.count(),
		SecondaryLive:     a.secondary.count(),
		Rehashes:          a.rehashes,
		Reseeds:           a.reseeds,
		Displacements:     a.displacements,
	}
}
