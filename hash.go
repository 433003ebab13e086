package assoc

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps key bytes to a raw 64-bit hash. The array reduces the result
// modulo the capacity of the table being probed, so a HashFunc never sees a
// table size.
//
// Implementations must be pure: equal byte content hashes identically no
// matter where it lives in memory.
type HashFunc func(key []byte) uint64

const (
	djb2Init = 5381
	djb2Fact = 33
	zktInit  = 331

	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// DJB2 is the default primary hash: hash = hash*33 + byte, seeded with 5381.
func DJB2(key []byte) uint64 {
	hash := uint64(djb2Init)
	for _, b := range key {
		hash = hash*djb2Fact + uint64(b)
	}
	return hash
}

// ZKT is the default secondary hash. It is seeded and mixed independently of
// DJB2: every byte is offset and scaled by its 1-based position before being
// folded in. The multiplier is kept odd so no earlier byte is ever shifted
// out of the word.
func ZKT(key []byte) uint64 {
	hash := uint64(zktInit)
	for i, b := range key {
		pos := uint64(i + 1)
		hash = hash*(2*(uint64(b)+pos)*pos+1) + zktInit
	}
	return hash
}

// FNV1a computes a 64-bit FNV-1a hash of the key
func FNV1a(key []byte) uint64 {
	hash := uint64(offset64)
	for _, b := range key {
		hash ^= uint64(b)
		hash *= prime64
	}
	return hash
}

// XXHash hashes the key with xxHash64.
func XXHash(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// XXHashSeeded returns an xxHash64 variant whose digest is primed with seed,
// which makes it independent of XXHash and usable as a secondary hash next
// to it.
func XXHashSeeded(seed uint64) HashFunc {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], seed)
	return func(key []byte) uint64 {
		d := xxhash.New()
		_, _ = d.Write(prefix[:])
		_, _ = d.Write(key)
		return d.Sum64()
	}
}
