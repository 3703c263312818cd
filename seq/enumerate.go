package seq

import (
	"fmt"
	"iter"

	"github.com/npillmayer/foundation"
)

// Of returns a sequence of the given values.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// Range returns the sequence of count integers starting at from.
func Range(from, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i < from+count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Generate returns the infinite sequence seed, next(seed), next(next(seed)), …
func Generate[T any](seed T, next func(T) T) iter.Seq[T] {
	if next == nil {
		panic(errNilArgument("Generate", "next"))
	}
	return func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Take returns the first n elements of src. It stops pulling from src once n
// elements have been yielded.
func Take[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range src {
			if !yield(v) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Cycle repeats src endlessly. An empty source yields nothing.
func Cycle[T any](src iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			empty := true
			for v := range src {
				empty = false
				if !yield(v) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// Enumerate tags every element of src with its position, starting at 0.
func Enumerate[T any](src iter.Seq[T]) iter.Seq2[int, T] {
	return EnumerateFrom(src, 0)
}

// EnumerateFrom tags every element of src with a counter starting at seed.
func EnumerateFrom[T any](src iter.Seq[T], seed int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := seed
		for v := range src {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// EnumerateCycle tags every element of src with a counter cycling through
// min..max, both inclusive. After max the counter wraps to min.
//
// EnumerateCycle panics if min > max.
func EnumerateCycle[T any](src iter.Seq[T], min, max int) iter.Seq2[int, T] {
	if min > max {
		panic(fmt.Errorf("%w: seq.EnumerateCycle: min %d > max %d",
			foundation.ErrInvalidArgument, min, max))
	}
	return func(yield func(int, T) bool) {
		i := min
		for v := range src {
			if !yield(i, v) {
				return
			}
			if i == max {
				i = min
			} else {
				i++
			}
		}
	}
}

// Values drops the keys of a sequence of pairs.
func Values[K, V any](src iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range src {
			if !yield(v) {
				return
			}
		}
	}
}
