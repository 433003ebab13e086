package assoc

import "os"

// Strategy selects the collision-resolution scheme.
type Strategy int

const (
	// StrategyCuckoo places every key in one of two tables, evicting residents
	// back and forth between them. Lookups touch at most one slot per table.
	StrategyCuckoo Strategy = iota
	// StrategyDoubleHash keeps every key in the primary table and resolves
	// collisions by walking a probe sequence whose step comes from the
	// secondary hash.
	StrategyDoubleHash
)

func (s Strategy) String() string {
	switch s {
	case StrategyCuckoo:
		return "cuckoo"
	case StrategyDoubleHash:
		return "double-hash"
	default:
		return "unknown"
	}
}

const (
	defaultInitialCapacity  = 17
	defaultLoadFactor       = 0.6
	defaultGrowthFactor     = 2
	defaultMinDisplacements = 8
)

type options struct {
	initialCapacity  int
	loadFactor       float64
	growthFactor     int
	sizing           Sizing
	primary          HashFunc
	secondary        HashFunc
	strategy         Strategy
	minDisplacements int
	logger           *Logger
	fatal            func(error)
}

func defaultOptions() options {
	return options{
		initialCapacity:  defaultInitialCapacity,
		loadFactor:       defaultLoadFactor,
		growthFactor:     defaultGrowthFactor,
		sizing:           SizingPrime,
		primary:          DJB2,
		secondary:        ZKT,
		strategy:         StrategyCuckoo,
		minDisplacements: defaultMinDisplacements,
	}
}

// Option configures an Array at construction time.
type Option func(*options)

// WithInitialCapacity sets the starting capacity of each table. The value is
// rounded up to the next size allowed by the sizing policy.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialCapacity = n
		}
	}
}

// WithLoadFactor sets the per-table load factor above which both tables are
// rebuilt. Values outside (0, 1) are ignored.
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		if f > 0 && f < 1 {
			o.loadFactor = f
		}
	}
}

// WithGrowthFactor sets the multiplier applied to a table's capacity on each
// growth step. Values below 2 are ignored.
func WithGrowthFactor(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.growthFactor = n
		}
	}
}

// WithSizing selects prime or power-of-two table capacities.
func WithSizing(s Sizing) Option {
	return func(o *options) {
		o.sizing = s
	}
}

// WithHashes replaces the primary and secondary hash functions. A nil
// argument keeps the corresponding default.
//
// Example:
//
//	a := assoc.New(16, assoc.WithHashes(assoc.XXHash, assoc.XXHashSeeded(42)))
func WithHashes(primary, secondary HashFunc) Option {
	return func(o *options) {
		if primary != nil {
			o.primary = primary
		}
		if secondary != nil {
			o.secondary = secondary
		}
	}
}

// WithStrategy selects the collision-resolution scheme.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithMinDisplacements sets the floor of the eviction-chain bound. The actual
// bound is max(ceil(log2(capacity)), n).
func WithMinDisplacements(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minDisplacements = n
		}
	}
}

// WithLogger configures structured logging. Pass nil to keep the default
// text logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFatalHandler replaces the handler invoked on unrecoverable
// configuration errors. The default logs the error and exits the process.
func WithFatalHandler(fn func(error)) Option {
	return func(o *options) {
		o.fatal = fn
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = NewLogger(nil)
	}
	if o.fatal == nil {
		logger := o.logger
		o.fatal = func(err error) {
			logger.LogFatal(err)
			os.Exit(1)
		}
	}
}
