package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/theflywheel/assoc"
)

func main() {
	logger := assoc.NewTextLogger(slog.LevelDebug)

	// Fixed-size keys: 8-byte integers
	a := assoc.New(8, assoc.WithLogger(logger))
	defer a.Free()

	fmt.Println("Associative array created")

	key := make([]byte, 8)
	for i := 0; i < 20; i++ {
		binary.BigEndian.PutUint64(key, uint64(i))
		if err := a.Insert(key, i*100); err != nil {
			logger.Error("insert failed", "key", i, "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Inserted %d key-value pairs\n", a.Count())

	for i := 0; i < 25; i += 3 {
		binary.BigEndian.PutUint64(key, uint64(i))
		if v, ok := a.Lookup(key); ok {
			fmt.Printf("Key %d => Value %v\n", i, v)
		} else {
			fmt.Printf("Key %d not found\n", i)
		}
	}

	// Update a value
	binary.BigEndian.PutUint64(key, 2)
	_ = a.Insert(key, 999)
	v, _ := a.Lookup(key)
	fmt.Printf("Updated key 2 => Value %v\n", v)

	// Keys of the wrong width are rejected
	var mismatch *assoc.ErrKeySizeMismatch
	if err := a.Insert([]byte{1, 2, 3}, nil); errors.As(err, &mismatch) {
		fmt.Printf("Rejected key: %v\n", err)
	}

	// String keys end at the first NUL
	names := assoc.New(0, assoc.WithLogger(logger))
	defer names.Free()

	_ = names.Insert([]byte("bob"), 22)
	_ = names.Insert([]byte("alice\x00ignored"), 31)
	if v, ok := names.Lookup([]byte("alice")); ok {
		fmt.Printf("alice => %v\n", v)
	}

	fmt.Printf("Stats: %+v\n", a.Stats())
	fmt.Println("Example completed successfully")
}
