package linear

import (
	"encoding/binary"
	"hash/maphash"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashFunc is a type definition for what a hash function should look like.
// It must return the same value for equal keys for the whole lifetime of
// a table.
type HashFunc[K comparable] func(key K) uint64

// defaultHashFunc returns the hash function used when none is supplied.
// Strings and fixed width integers are hashed by content with xxhash, so
// they hash the same in every table and every process. Any other key type
// is hashed with maphash using a seed that is fixed when the table is made.
func defaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return xxhash.Sum64String(k)
		case int:
			return hashUint64(uint64(k))
		case int8:
			return hashUint64(uint64(k))
		case int16:
			return hashUint64(uint64(k))
		case int32:
			return hashUint64(uint64(k))
		case int64:
			return hashUint64(uint64(k))
		case uint:
			return hashUint64(uint64(k))
		case uint8:
			return hashUint64(uint64(k))
		case uint16:
			return hashUint64(uint64(k))
		case uint32:
			return hashUint64(uint64(k))
		case uint64:
			return hashUint64(k)
		case uintptr:
			return hashUint64(uint64(k))
		case bool:
			if k {
				return hashUint64(1)
			}
			return hashUint64(0)
		}
		return maphash.Comparable(seed, key)
	}
}

func hashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return xxhash.Sum64(b[:])
}

// nilableKey reports whether values of K can be nil at all, so the
// reflection based check is skipped for strings, numbers and structs
func nilableKey[K comparable]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNilKey reports whether key is a nil pointer, channel or interface
func isNilKey[K comparable](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		// nil interface
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer,
		reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}
