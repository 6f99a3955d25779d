package memo

// Table caches results of pure subproblems, keyed by their state.
//
// The zero value is not ready for use; construct with New. Entries are
// written once and never invalidated within a call: Put on an existing
// key overwrites, but well-behaved solvers only store a state after it
// has been fully evaluated, so the overwrite is always value-equal.
type Table[K comparable, V any] struct {
	entries map[K]V
}

// New returns an empty Table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Get returns the cached result for key and whether it was present.
func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.entries[key]

	return v, ok
}

// Put stores the fully evaluated result for key.
func (t *Table[K, V]) Put(key K, value V) {
	t.entries[key] = value
}

// Len reports the number of distinct states cached so far.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}
