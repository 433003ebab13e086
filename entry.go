package assoc

import "bytes"

// entry is a key/value cell owned by exactly one table slot.
type entry struct {
	key   []byte
	value any
}

func newEntry(key []byte, value any) *entry {
	return &entry{key: key, value: value}
}

// keyMode describes how keys are sized and compared.
type keyMode struct {
	// size is the fixed key width in bytes; 0 means NUL-terminated strings.
	size int
}

func (m keyMode) strings() bool {
	return m.size == 0
}

func (m keyMode) String() string {
	if m.strings() {
		return "string"
	}
	return "fixed"
}

// normalize returns the significant bytes of key: everything before the first
// NUL in string mode, or the whole key in fixed mode. ok is false when a fixed
// key has the wrong width.
func (m keyMode) normalize(key []byte) ([]byte, bool) {
	if m.strings() {
		if i := bytes.IndexByte(key, 0); i >= 0 {
			return key[:i], true
		}
		return key, true
	}
	if len(key) != m.size {
		return nil, false
	}
	return key, true
}

// own copies a normalized key so the array never aliases caller memory.
func (m keyMode) own(key []byte) []byte {
	owned := make([]byte, len(key))
	copy(owned, key)
	return owned
}

// match reports whether the entry holds key. A nil entry never matches.
func (m keyMode) match(e *entry, key []byte) bool {
	if e == nil {
		return false
	}
	return bytes.Equal(e.key, key)
}
