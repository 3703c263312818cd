package seq

import (
	"iter"
	"slices"

	"github.com/npillmayer/foundation"
)

// FromIndex yields the elements of src whose position satisfies pred.
func FromIndex[T any](src iter.Seq[T], pred func(int) bool) iter.Seq[T] {
	if pred == nil {
		panic(errNilArgument("FromIndex", "predicate"))
	}
	return func(yield func(T) bool) {
		for i, v := range Enumerate(src) {
			if pred(i) && !yield(v) {
				return
			}
		}
	}
}

// WhereByIndex yields the elements at positions lo..hi, both inclusive.
// Positions outside of src are ignored. WhereByIndex stops pulling from src
// after position hi.
func WhereByIndex[T any](src iter.Seq[T], lo, hi int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if hi < 0 || hi < lo {
			return
		}
		for i, v := range Enumerate(src) {
			if i >= lo && !yield(v) {
				return
			}
			if i >= hi {
				return
			}
		}
	}
}

// Nth returns the element at position n.
func Nth[T any](src iter.Seq[T], n int) foundation.Option[T] {
	if n < 0 {
		return foundation.None[T]()
	}
	for i, v := range Enumerate(src) {
		if i == n {
			return foundation.Some(v)
		}
	}
	return foundation.None[T]()
}

// Nths yields the elements at the given positions, in source order.
// Invalid positions are ignored.
func Nths[T any](src iter.Seq[T], positions ...int) iter.Seq[T] {
	wanted := sortedPositions(positions)
	return func(yield func(T) bool) {
		if len(wanted) == 0 {
			return
		}
		k := 0
		for i, v := range Enumerate(src) {
			if i != wanted[k] {
				continue
			}
			if !yield(v) {
				return
			}
			if k++; k == len(wanted) {
				return
			}
		}
	}
}

// IgnoreAt yields the elements of src except those at the given positions.
func IgnoreAt[T any](src iter.Seq[T], positions ...int) iter.Seq[T] {
	ignored := sortedPositions(positions)
	return func(yield func(T) bool) {
		for i, v := range Enumerate(src) {
			if _, skip := slices.BinarySearch(ignored, i); skip {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// sortedPositions returns the non-negative positions, sorted and without
// duplicates.
func sortedPositions(positions []int) []int {
	p := slices.DeleteFunc(slices.Clone(positions), func(i int) bool {
		return i < 0
	})
	slices.Sort(p)
	return slices.Compact(p)
}
