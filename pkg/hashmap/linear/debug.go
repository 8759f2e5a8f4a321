package linear

import (
	"fmt"
	"io"
)

// Iterator is an iterator function type over live entries
type Iterator[K comparable, V any] func(key K, value V) bool

// Range takes an Iterator and ranges the Table as long as the iterator
// function continues to be true. Range is not safe to perform an insert
// or remove operation while ranging!
func (t *Table[K, V]) Range(it Iterator[K, V]) {
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		if !it(t.slots[i].key, t.slots[i].val) {
			return
		}
	}
}

// Slots calls fn for every slot in index order, free or not. The key and
// value of a free slot are the zero values. Iteration stops when fn
// returns false.
func (t *Table[K, V]) Slots(fn func(index int, key K, value V, used bool) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !fn(i, s.key, s.val, s.used) {
			return
		}
	}
}

// Keys returns the live keys in slot order
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Dump writes one line per slot to w in the form "index: key : value"
func (t *Table[K, V]) Dump(w io.Writer) error {
	var err error
	t.Slots(func(i int, key K, value V, used bool) bool {
		if used {
			_, err = fmt.Fprintf(w, "%d: %v : %v\n", i, key, value)
		} else {
			_, err = fmt.Fprintf(w, "%d: <empty>\n", i)
		}
		return err == nil
	})
	return err
}

// Hash returns the full hash value of key
func (t *Table[K, V]) Hash(key K) uint64 {
	return t.hash(key)
}

// Index returns the home slot of key at the current capacity
func (t *Table[K, V]) Index(key K) int {
	return t.home(t.hash(key))
}

// MaxProbe returns the largest distance of any live entry from its home slot
func (t *Table[K, V]) MaxProbe() int {
	var hdist int
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		if d := t.distance(t.slots[i].hashkey, i); d > hdist {
			hdist = d
		}
	}
	return hdist
}

// PercentFull returns the current load factor of the Table
func (t *Table[K, V]) PercentFull() float64 {
	return float64(t.count) / float64(len(t.slots))
}
