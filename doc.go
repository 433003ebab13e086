/*
Package assoc provides an in-memory associative array from byte keys to
opaque values, resolved with two-table cuckoo hashing.

Keys are either fixed-width binary strings or NUL-terminated strings. The
mode is chosen once, when the array is created. Values are stored as given
and never inspected.

Basic usage:

	import "github.com/theflywheel/assoc"

	// 4-byte keys
	a := assoc.New(4)
	defer a.Free()

	key := make([]byte, 4)
	binary.LittleEndian.PutUint32(key, 12345)
	if err := a.Insert(key, "hello"); err != nil {
		log.Fatal(err)
	}

	if v, ok := a.Lookup(key); ok {
		fmt.Println("Value:", v)
	}

	// string keys
	s := assoc.New(0)
	s.Insert([]byte("avocado"), 42)

Features:

  - Fixed-size or string keys, copied on insert
  - Lookups check at most one slot in each of the two tables
  - Bounded eviction chains; a placement that runs out of evictions grows
    both tables instead of failing
  - Automatic growth when either table's load factor exceeds 0.6
  - Prime (default) or power-of-two table capacities
  - Pluggable hash functions: DJB2 and ZKT by default, FNV-1a and xxHash
    available
  - Optional double-hashing strategy over a single table

Implementation Details:

Each key has one candidate slot in the primary table, chosen by the primary
hash, and one in the secondary table, chosen by the secondary hash. Insert
first checks both candidates for an equal key and overwrites its value if one
is found. Otherwise the new entry takes its primary slot, evicting any
resident to that resident's slot in the other table. This continues back and
forth until an empty slot is found or the eviction bound,
max(ceil(log2(capacity)), 8), is reached.

When the bound is hit, or a successful insert leaves either table above the
load factor, both tables are rebuilt at the next capacity in the sizing
progression. With the defaults that progression is 17, 37, 79, 163 and so
on. Every entry is reinserted in table order and then slot order. The entry
left homeless by the failed insert is placed last. If the rebuild itself runs
out of evictions, it is retried one growth step larger. After four growth
steps the capacity is held and both hash functions are replaced with freshly
seeded xxHash functions, which separates keys whose hashes collide outright.
The old tables stay intact until a rebuild succeeds.

An Array is not safe for concurrent use.
*/
package assoc
