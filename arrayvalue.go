package foundation

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ArrayValue is an immutable array which compares element-wise.
// Nil and empty arrays are equal.
type ArrayValue[T comparable] struct {
	values []T
}

// NewArrayValue creates an ArrayValue from a copy of values.
func NewArrayValue[T comparable](values ...T) ArrayValue[T] {
	return ArrayValue[T]{values: slices.Clone(values)}
}

// Len returns the number of elements.
func (a ArrayValue[T]) Len() int {
	return len(a.values)
}

// IsEmpty reports whether a has no elements.
func (a ArrayValue[T]) IsEmpty() bool {
	return len(a.values) == 0
}

// At returns the element at position i.
func (a ArrayValue[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.values) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return a.values[i], nil
}

// All iterates over positions and elements.
func (a ArrayValue[T]) All() iter.Seq2[int, T] {
	return slices.All(a.values)
}

// Values returns a copy of the elements.
func (a ArrayValue[T]) Values() []T {
	return slices.Clone(a.values)
}

// Equal compares two ArrayValues element by element.
func (a ArrayValue[T]) Equal(other ArrayValue[T]) bool {
	return slices.Equal(a.values, other.values)
}

// EqualSlice compares a to a plain slice.
func (a ArrayValue[T]) EqualSlice(other []T) bool {
	return slices.Equal(a.values, other)
}

func (a ArrayValue[T]) String() string {
	var b strings.Builder
	for i, v := range a.values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}
