package linear

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// slot represents a single position in the Table. A slot is free unless
// used is set; the key and value of a free slot are always zero.
type slot[K comparable, V any] struct {
	used    bool
	hashkey uint64
	key     K
	val     V
}

// Table is a linear probing hash table. The zero value is not usable;
// create one with New. A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	hash    HashFunc[K]
	nilable bool
	log     *zap.Logger
	metrics *Metrics
	initial int
	count   int
	slots   []slot[K, V]
}

// options holds everything an Option can set. The hash function is kept
// untyped so a single Option type works for every Table instantiation.
type options struct {
	hash    any
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Table in New
type Option func(*options)

// WithHashFunc replaces the default hash function. The key type of fn
// must match the key type of the table it is passed to.
func WithHashFunc[K comparable](fn func(key K) uint64) Option {
	return func(o *options) {
		o.hash = fn
	}
}

// WithLogger sets the logger the table reports growth and repairs to
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics attaches a set of collectors that every table operation updates
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// New returns a new Table with the given initial capacity. A capacity
// below one selects DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option) *Table[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table[K, V]{
		hash:    defaultHashFunc[K](),
		nilable: nilableKey[K](),
		log:     o.logger,
		metrics: o.metrics,
		initial: normalCapacity(capacity),
	}
	if o.hash != nil {
		fn, ok := o.hash.(func(key K) uint64)
		if !ok {
			panic(errors.AssertionFailedf("hash function %T does not match key type", o.hash))
		}
		t.hash = fn
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	t.slots = make([]slot[K, V], t.initial)
	return t
}

// home returns the index of the first slot in the probe sequence of hashkey
func (t *Table[K, V]) home(hashkey uint64) int {
	return int(hashkey % uint64(len(t.slots)))
}

// next returns the slot index following i, wrapping around at the end
func (t *Table[K, V]) next(i int) int {
	i++
	if i == len(t.slots) {
		return 0
	}
	return i
}

// distance returns how many steps slot i is away from the home index of hashkey
func (t *Table[K, V]) distance(hashkey uint64, i int) int {
	h := t.home(hashkey)
	if i >= h {
		return i - h
	}
	return len(t.slots) - h + i
}

// probe walks the probe sequence of key. It returns the index of the slot
// holding key and true, or the index of the free slot that ended the walk
// and false.
func (t *Table[K, V]) probe(hashkey uint64, key K) (int, bool) {
	i := t.home(hashkey)
	for n := 0; n < len(t.slots); n++ {
		s := &t.slots[i]
		// havent located anything
		if !s.used {
			return i, false
		}
		// check for matching hashes and keys
		if s.hashkey == hashkey && s.key == key {
			return i, true
		}
		// keep on probing
		i = t.next(i)
	}
	panic(errors.AssertionFailedf("probe visited all %d slots holding %d entries without finding a free one",
		len(t.slots), t.count))
}

// insert places an entry without checking the load factor. It returns
// the index the entry ended up in, along with the previous value if the
// key was already present.
func (t *Table[K, V]) insert(hashkey uint64, key K, value V) (int, V, bool) {
	i, found := t.probe(hashkey, key)
	if found {
		// hashes and keys are a match--update entry and return previous value
		prev := t.slots[i].val
		t.slots[i].val = value
		return i, prev, true
	}
	// we found a free slot, insert a new entry
	t.slots[i] = slot[K, V]{
		used:    true,
		hashkey: hashkey,
		key:     key,
		val:     value,
	}
	t.count++
	var zero V
	return i, zero, false
}

// grow doubles the capacity of the table. Every live entry is inserted
// again in slot order, since the home index depends on the capacity.
func (t *Table[K, V]) grow() {
	old := t.slots
	count := t.count
	t.slots = make([]slot[K, V], 2*len(old))
	t.count = 0
	for i := range old {
		if old[i].used {
			t.insert(old[i].hashkey, old[i].key, old[i].val)
		}
	}
	if t.count != count {
		panic(errors.AssertionFailedf("grow moved %d entries, expected %d", t.count, count))
	}
	t.metrics.grew()
	t.log.Debug("table grown",
		zap.Int("old_capacity", len(old)),
		zap.Int("new_capacity", len(t.slots)),
		zap.Int("count", t.count))
}

// validKey returns ErrNullKey if key is nil
func (t *Table[K, V]) validKey(op string, key K) error {
	if t.nilable && isNilKey(key) {
		return errors.Wrapf(ErrNullKey, "%s", op)
	}
	return nil
}

// Insert adds key with value to the table, overwriting the value if the
// key is already present. A nil key is rejected with ErrNullKey and the
// table is left untouched.
func (t *Table[K, V]) Insert(key K, value V) error {
	_, _, err := t.Set(key, value)
	return err
}

// Set is like Insert but also returns the previous value and whether
// the key was already present.
func (t *Table[K, V]) Set(key K, value V) (V, bool, error) {
	if err := t.validKey("insert", key); err != nil {
		var zero V
		return zero, false, err
	}
	// check and see if we need to grow before placing the new entry
	if needsGrow(t.count, len(t.slots)) {
		t.grow()
	}
	hashkey := t.hash(key)
	i, prev, replaced := t.insert(hashkey, key, value)
	t.metrics.inserted(replaced, t.distance(hashkey, i))
	return prev, replaced, nil
}

// Contains reports whether key is present in the table
func (t *Table[K, V]) Contains(key K) bool {
	_, found := t.probe(t.hash(key), key)
	return found
}

// Get returns the value stored for key, or false if none could be found
func (t *Table[K, V]) Get(key K) (V, bool) {
	hashkey := t.hash(key)
	i, found := t.probe(hashkey, key)
	t.metrics.probed(t.distance(hashkey, i))
	if !found {
		var zero V
		return zero, false
	}
	return t.slots[i].val, true
}

// Find returns the value stored for key. Unlike Get it reports a missing
// key as an error wrapping ErrKeyNotFound.
func (t *Table[K, V]) Find(key K) (V, error) {
	v, ok := t.Get(key)
	if !ok {
		return v, errors.Wrapf(ErrKeyNotFound, "find %v", key)
	}
	return v, nil
}

// Delete removes key from the table. Deleting a key that is not present
// is a no-op. A nil key is rejected with ErrNullKey.
func (t *Table[K, V]) Delete(key K) error {
	_, _, err := t.Remove(key)
	return err
}

// Remove deletes key and returns the value it held, or false if the key
// was not present.
func (t *Table[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if err := t.validKey("delete", key); err != nil {
		return zero, false, err
	}
	i, found := t.probe(t.hash(key), key)
	if !found {
		return zero, false, nil
	}
	val := t.slots[i].val
	t.slots[i] = slot[K, V]{}
	t.count--
	moved := t.repair(t.next(i))
	t.metrics.deleted(moved)
	if moved > 0 {
		t.log.Debug("probe chain repaired",
			zap.Int("freed_index", i),
			zap.Int("relocated", moved))
	}
	return val, true, nil
}

// repair evicts and re-inserts every entry in the run of occupied slots
// starting at j, stopping at the first free slot. An entry can only land
// between its home index and its old index, so the free slot that ends
// the run stays free and the loop terminates. It returns how many entries
// changed position.
func (t *Table[K, V]) repair(j int) int {
	var moved int
	for t.slots[j].used {
		s := t.slots[j]
		t.slots[j] = slot[K, V]{}
		t.count--
		if i, _, _ := t.insert(s.hashkey, s.key, s.val); i != j {
			moved++
		}
		j = t.next(j)
	}
	return moved
}

// Clear removes every entry and resets the table to its initial capacity
func (t *Table[K, V]) Clear() {
	t.slots = make([]slot[K, V], t.initial)
	t.count = 0
}

// Len returns the number of entries currently in the table
func (t *Table[K, V]) Len() int {
	return t.count
}

// Size is an alias for Len
func (t *Table[K, V]) Size() int {
	return t.count
}

// Cap returns the number of slots currently allocated
func (t *Table[K, V]) Cap() int {
	return len(t.slots)
}
