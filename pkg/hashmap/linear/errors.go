package linear

import "github.com/cockroachdb/errors"

var (
	// ErrNullKey is returned when a nil key is passed to Insert or Delete.
	ErrNullKey = errors.New("linear: null key")

	// ErrKeyNotFound is returned by Find when the key is not in the table.
	ErrKeyNotFound = errors.New("linear: key not found")
)
