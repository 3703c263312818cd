package multimap

import (
	"iter"
	"slices"
)

// All flattens the map into key/value pairs.
//
// Without arguments, keys are visited in insertion order. With keys given,
// only these keys are visited, in argument order, and unknown keys are
// skipped. Within a key, values appear in bucket insertion order.
func (m *Map[K, V]) All(keys ...K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.forEachItem(keys, yield)
	}
}

// Buckets iterates over keys and copies of their buckets. Arguments select
// keys like for All.
func (m *Map[K, V]) Buckets(keys ...K) iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for _, key := range m.selectKeys(keys) {
			bucket, ok := m.buckets[key]
			if !ok {
				continue
			}
			if !yield(key, slices.Clone(bucket)) {
				return
			}
		}
	}
}

// Keys iterates over the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range slices.Clone(m.keys) {
			if !yield(key) {
				return
			}
		}
	}
}

// KeysOf iterates over the keys whose bucket holds at least one of values.
func (m *Map[K, V]) KeysOf(values ...V) iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range slices.Clone(m.keys) {
			bucket := m.buckets[key]
			found := slices.ContainsFunc(values, func(v V) bool {
				return m.indexIn(bucket, v) >= 0
			})
			if found && !yield(key) {
				return
			}
		}
	}
}

// Values iterates over the values of the given keys, or of all keys if
// none are given.
func (m *Map[K, V]) Values(keys ...K) iter.Seq[V] {
	return func(yield func(V) bool) {
		m.forEachItem(keys, func(_ K, v V) bool {
			return yield(v)
		})
	}
}

// ForEach walks all key/value pairs in flattened order.
//
// Iteration stops early if callback returns false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	if m == nil || fn == nil {
		return
	}
	m.forEachItem(nil, fn)
}

func (m *Map[K, V]) forEachItem(keys []K, fn func(K, V) bool) bool {
	for _, key := range m.selectKeys(keys) {
		bucket, ok := m.buckets[key]
		if !ok {
			continue
		}
		for _, v := range slices.Clone(bucket) {
			if !fn(key, v) {
				return false
			}
		}
	}
	return true
}

// selectKeys returns a snapshot of the keys to visit, so that callbacks may
// mutate the map without disturbing the walk.
func (m *Map[K, V]) selectKeys(keys []K) []K {
	if len(keys) == 0 {
		return slices.Clone(m.keys)
	}
	return keys
}
