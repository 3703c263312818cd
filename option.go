package foundation

import "fmt"

// Option is an optional value of type T. The zero value is an empty Option.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps a value into a non-empty Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Maybe creates an Option from the result of a comma-ok lookup.
func Maybe[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the value of o and whether o holds one.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

// Get returns the value of o, or ErrNone if o is empty.
func (o Option[T]) Get() (T, error) {
	if !o.some {
		var zero T
		return zero, ErrNone
	}
	return o.value, nil
}

// OrElse returns the value of o, or dflt if o is empty.
func (o Option[T]) OrElse(dflt T) T {
	if !o.some {
		return dflt
	}
	return o.value
}

// OrElseGet returns the value of o, or calls fn if o is empty.
func (o Option[T]) OrElseGet(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies fn to the value of o, if any.
func MapOption[T, R any](o Option[T], fn func(T) R) Option[R] {
	if !o.some {
		return None[R]()
	}
	return Some(fn(o.value))
}
