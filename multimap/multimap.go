package multimap

import (
	"fmt"
	"slices"

	"github.com/npillmayer/foundation"
)

// Map maps keys to ordered buckets of values.
//
// The zero value is not usable, create maps with New or NewWithConfig.
type Map[K comparable, V any] struct {
	cfg     Config[V]
	buckets map[K][]V
	keys    []K // insertion order of keys currently present
}

// New creates an empty map which compares values with ==.
func New[K, V comparable]() *Map[K, V] {
	m, err := NewWithConfig[K](Config[V]{Equal: equality[V]()})
	assert(err == nil, "default configuration rejected")
	return m
}

// NewWithConfig creates an empty map with validated configuration.
func NewWithConfig[K comparable, V any](cfg Config[V]) (*Map[K, V], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("multimap: %v", err)
		return nil, err
	}
	cfg = cfg.normalized()
	return &Map[K, V]{
		cfg:     cfg,
		buckets: make(map[K][]V, cfg.Capacity),
		keys:    make([]K, 0, cfg.Capacity),
	}, nil
}

// Config returns a copy of the effective configuration.
func (m *Map[K, V]) Config() Config[V] {
	return m.cfg
}

// --- Mutation --------------------------------------------------------------

// Add appends value to the bucket of key, creating the bucket if absent.
func (m *Map[K, V]) Add(key K, value V) {
	bucket, ok := m.buckets[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.buckets[key] = append(bucket, value)
}

// AddSingle replaces the bucket of key by a bucket holding just value.
func (m *Map[K, V]) AddSingle(key K, value V) {
	if _, ok := m.buckets[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.buckets[key] = []V{value}
}

// AddUnique adds value to the bucket of key only if the bucket does not
// already contain an equal value. If replace is true, an equal value is
// overwritten in place. AddUnique returns true if the map changed.
func (m *Map[K, V]) AddUnique(key K, value V, replace bool) bool {
	bucket := m.buckets[key]
	if i := m.indexIn(bucket, value); i >= 0 {
		if replace {
			bucket[i] = value
			return true
		}
		return false
	}
	m.Add(key, value)
	return true
}

// Remove removes the first value of key's bucket which equals value.
// If the bucket becomes empty, key is removed as well.
// It returns false if nothing was removed.
func (m *Map[K, V]) Remove(key K, value V) bool {
	bucket, ok := m.buckets[key]
	if !ok {
		return false
	}
	i := m.indexIn(bucket, value)
	if i < 0 {
		return false
	}
	m.setBucket(key, slices.Delete(bucket, i, i+1))
	return true
}

// RemoveKey removes key together with all its values.
func (m *Map[K, V]) RemoveKey(key K) bool {
	if _, ok := m.buckets[key]; !ok {
		return false
	}
	m.setBucket(key, nil)
	return true
}

// RemoveValue removes every value equal to value from every bucket.
func (m *Map[K, V]) RemoveValue(value V) bool {
	return m.RemoveValueFrom(value, slices.Clone(m.keys)...)
}

// RemoveValueFrom removes every value equal to value from the buckets of
// the given keys. Unknown keys are ignored.
func (m *Map[K, V]) RemoveValueFrom(value V, keys ...K) bool {
	removed := false
	for _, key := range keys {
		bucket, ok := m.buckets[key]
		if !ok {
			continue
		}
		n := len(bucket)
		bucket = slices.DeleteFunc(bucket, func(v V) bool {
			return m.cfg.Equal(v, value)
		})
		if len(bucket) != n {
			removed = true
			m.setBucket(key, bucket)
		}
	}
	return removed
}

// Clear removes all keys and values.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.keys = m.keys[:0]
}

// setBucket stores bucket for key, dropping the key if the bucket is empty.
func (m *Map[K, V]) setBucket(key K, bucket []V) {
	if len(bucket) > 0 {
		m.buckets[key] = bucket
		return
	}
	delete(m.buckets, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	tracer().Debugf("multimap: key %v removed with its last value", key)
}

// --- Lookup ----------------------------------------------------------------

// TryGetValues returns a copy of the bucket of key.
func (m *Map[K, V]) TryGetValues(key K) ([]V, bool) {
	bucket, ok := m.buckets[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(bucket), true
}

// First returns the first value of key's bucket, if any.
func (m *Map[K, V]) First(key K) foundation.Option[V] {
	bucket, ok := m.buckets[key]
	if !ok {
		return foundation.None[V]()
	}
	return foundation.Some(bucket[0])
}

// Contains reports whether the bucket of key holds a value equal to value.
func (m *Map[K, V]) Contains(key K, value V) bool {
	return m.indexIn(m.buckets[key], value) >= 0
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.buckets[key]
	return ok
}

// ContainsValue reports whether any bucket holds a value equal to value.
func (m *Map[K, V]) ContainsValue(value V) bool {
	for _, bucket := range m.buckets {
		if m.indexIn(bucket, value) >= 0 {
			return true
		}
	}
	return false
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the map has no keys.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// ValuesLen returns the number of values in all buckets.
func (m *Map[K, V]) ValuesLen() int {
	n := 0
	for _, bucket := range m.buckets {
		n += len(bucket)
	}
	return n
}

// ValuesCount returns the number of values stored for key.
func (m *Map[K, V]) ValuesCount(key K) int {
	return len(m.buckets[key])
}

func (m *Map[K, V]) indexIn(bucket []V, value V) int {
	return slices.IndexFunc(bucket, func(v V) bool {
		return m.cfg.Equal(v, value)
	})
}

// --- Invariants ------------------------------------------------------------

// Check validates the internal consistency of the map. It is meant to be
// used in tests.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrBrokenInvariant)
	}
	if len(m.keys) != len(m.buckets) {
		return fmt.Errorf("%w: %d ordered keys for %d buckets",
			ErrBrokenInvariant, len(m.keys), len(m.buckets))
	}
	for _, key := range m.keys {
		bucket, ok := m.buckets[key]
		if !ok {
			return fmt.Errorf("%w: ordered key %v has no bucket", ErrBrokenInvariant, key)
		}
		if len(bucket) == 0 {
			return fmt.Errorf("%w: key %v has an empty bucket", ErrBrokenInvariant, key)
		}
	}
	return nil
}

func (m *Map[K, V]) String() string {
	return fmt.Sprintf("multimap{keys=%d, values=%d}", m.Len(), m.ValuesLen())
}
