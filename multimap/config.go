package multimap

import "fmt"

// DefaultCapacity is the initial number of key slots of a map.
const DefaultCapacity = 8

// Config configures a multi-value map.
type Config[V any] struct {
	// Equal decides if two values are the same. It is used for lookup and
	// removal of values, never for keys.
	Equal func(a, b V) bool
	// Capacity is a hint for the expected number of keys.
	// Values <= 0 select DefaultCapacity.
	Capacity int
}

func (cfg Config[V]) normalized() Config[V] {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config[V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Equal == nil {
		return fmt.Errorf("%w: value equality is required", ErrInvalidConfig)
	}
	return nil
}

// equality returns the == operator as an equality function.
func equality[V comparable]() func(a, b V) bool {
	return func(a, b V) bool { return a == b }
}
