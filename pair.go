package foundation

import "fmt"

// Pair is a key/value tuple.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// NewPair creates a Pair.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
