package assoc

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeKeySize is reported to the fatal handler when New is given a
	// negative key size.
	ErrNegativeKeySize = errors.New("negative key size")

	// ErrKeySize is the sentinel wrapped by ErrKeySizeMismatch.
	ErrKeySize = errors.New("invalid key size")
)

// ErrKeySizeMismatch is returned by Insert when a fixed-size array is given a
// key of the wrong width.
type ErrKeySizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrKeySizeMismatch) Error() string {
	return fmt.Sprintf("key size mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

func (e *ErrKeySizeMismatch) Unwrap() error { return ErrKeySize }
