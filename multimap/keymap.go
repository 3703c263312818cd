package multimap

import (
	"iter"
	"slices"

	"github.com/npillmayer/foundation"
)

// KeyMap is a map which allows duplicate keys. Every entry carries a single
// value, and entries keep their insertion order.
//
// KeyMap indexes its entries with a Map from keys to entry ids.
type KeyMap[K comparable, V any] struct {
	equal   func(a, b V) bool
	index   *Map[K, int]
	entries map[int]foundation.Pair[K, V]
	order   []int
	nextID  int
}

// NewKeyMap creates an empty KeyMap which compares values with ==.
func NewKeyMap[K, V comparable]() *KeyMap[K, V] {
	m, err := NewKeyMapWithConfig[K](Config[V]{Equal: equality[V]()})
	assert(err == nil, "default configuration rejected")
	return m
}

// NewKeyMapWithConfig creates an empty KeyMap with validated configuration.
func NewKeyMapWithConfig[K comparable, V any](cfg Config[V]) (*KeyMap[K, V], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("multimap: %v", err)
		return nil, err
	}
	cfg = cfg.normalized()
	return &KeyMap[K, V]{
		equal:   cfg.Equal,
		index:   New[K, int](),
		entries: make(map[int]foundation.Pair[K, V], cfg.Capacity),
	}, nil
}

// Add appends an entry, regardless of key already being present.
func (km *KeyMap[K, V]) Add(key K, value V) {
	id := km.nextID
	km.nextID++
	km.entries[id] = foundation.NewPair(key, value)
	km.order = append(km.order, id)
	km.index.Add(key, id)
}

// Get returns the value of the first entry for key.
func (km *KeyMap[K, V]) Get(key K) foundation.Option[V] {
	id, ok := km.index.First(key).Value()
	if !ok {
		return foundation.None[V]()
	}
	return foundation.Some(km.entries[id].Value)
}

// Set overwrites the value of the first entry for key, or adds an entry if
// key is not present.
func (km *KeyMap[K, V]) Set(key K, value V) {
	id, ok := km.index.First(key).Value()
	if !ok {
		km.Add(key, value)
		return
	}
	km.entries[id] = foundation.NewPair(key, value)
}

// GetAll returns the values of all entries for key, in insertion order.
func (km *KeyMap[K, V]) GetAll(key K) []V {
	var values []V
	for id := range km.index.Values(key) {
		values = append(values, km.entries[id].Value)
	}
	return values
}

// Remove removes all entries for key.
func (km *KeyMap[K, V]) Remove(key K) bool {
	ids, ok := km.index.TryGetValues(key)
	if !ok {
		return false
	}
	km.index.RemoveKey(key)
	for _, id := range ids {
		km.drop(id)
	}
	return true
}

// RemovePair removes the first entry with key and a value equal to value.
func (km *KeyMap[K, V]) RemovePair(key K, value V) bool {
	for id := range km.index.Values(key) {
		if km.equal(km.entries[id].Value, value) {
			km.index.Remove(key, id)
			km.drop(id)
			return true
		}
	}
	return false
}

func (km *KeyMap[K, V]) drop(id int) {
	delete(km.entries, id)
	if i := slices.Index(km.order, id); i >= 0 {
		km.order = slices.Delete(km.order, i, i+1)
	}
}

// ContainsKey reports whether at least one entry has key.
func (km *KeyMap[K, V]) ContainsKey(key K) bool {
	return km.index.ContainsKey(key)
}

// Contains reports whether an entry with key and a value equal to value exists.
func (km *KeyMap[K, V]) Contains(key K, value V) bool {
	for id := range km.index.Values(key) {
		if km.equal(km.entries[id].Value, value) {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (km *KeyMap[K, V]) Len() int {
	return len(km.order)
}

// All iterates over the entries in insertion order.
func (km *KeyMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, id := range slices.Clone(km.order) {
			e, ok := km.entries[id]
			if !ok {
				continue
			}
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clear removes all entries.
func (km *KeyMap[K, V]) Clear() {
	km.index.Clear()
	clear(km.entries)
	km.order = km.order[:0]
}
