package seq

import "iter"

// Slice chops src into consecutive chunks of chopSize elements. The last
// chunk may be shorter. Concatenating all chunks reproduces src.
//
// Every chunk has its own backing array, so clients may keep chunks.
//
// Slice panics if chopSize is not positive.
func Slice[T any](src iter.Seq[T], chopSize int) iter.Seq[[]T] {
	mustBePositive("Slice", "chop size", chopSize)
	return func(yield func([]T) bool) {
		chunk := make([]T, 0, chopSize)
		for v := range src {
			chunk = append(chunk, v)
			if len(chunk) == chopSize {
				if !yield(chunk) {
					return
				}
				chunk = make([]T, 0, chopSize)
			}
		}
		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// SliceBy splits src by predicates. The i-th result sequence holds the
// elements whose first satisfied predicate is preds[i], in source order.
// Elements satisfying none of preds are dropped.
//
// Each result sequence is lazy and ranges over src on its own.
//
// SliceBy panics if one of preds is nil.
func SliceBy[T any](src iter.Seq[T], preds ...func(T) bool) []iter.Seq[T] {
	for _, p := range preds {
		if p == nil {
			panic(errNilArgument("SliceBy", "predicate"))
		}
	}
	parts := make([]iter.Seq[T], len(preds))
	for i := range preds {
		parts[i] = func(yield func(T) bool) {
			for v := range src {
				if firstSatisfied(preds, v) == i && !yield(v) {
					return
				}
			}
		}
	}
	return parts
}

func firstSatisfied[T any](preds []func(T) bool, v T) int {
	for i, p := range preds {
		if p(v) {
			return i
		}
	}
	return -1
}
