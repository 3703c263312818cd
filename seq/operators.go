package seq

import (
	"cmp"
	"fmt"
	"iter"

	cseq "github.com/go-softwarelab/common/pkg/seq"
	"github.com/npillmayer/foundation"
)

// ForEach calls action for every element of src and returns the number of
// elements processed.
func ForEach[T any](src iter.Seq[T], action func(T)) int {
	if action == nil {
		panic(errNilArgument("ForEach", "action"))
	}
	return cseq.Count(cseq.Tap(src, action))
}

// First returns the first element of src.
func First[T any](src iter.Seq[T]) foundation.Option[T] {
	for v := range src {
		return foundation.Some(v)
	}
	return foundation.None[T]()
}

// Single returns the only element of src. It is an error if src holds no or
// more than one element.
func Single[T any](src iter.Seq[T]) (T, error) {
	var single T
	n := 0
	for v := range src {
		if n++; n > 1 {
			var zero T
			return zero, fmt.Errorf("%w: sequence holds more than one element", foundation.ErrInvalidOperation)
		}
		single = v
	}
	if n == 0 {
		return single, fmt.Errorf("%w: sequence is empty", foundation.ErrInvalidOperation)
	}
	return single, nil
}

// IndexOf returns the position of the first element equal to v, or -1.
func IndexOf[T comparable](src iter.Seq[T], v T) int {
	for i, x := range Enumerate(src) {
		if x == v {
			return i
		}
	}
	return -1
}

// Ignore yields the elements of src which do not satisfy pred.
func Ignore[T any](src iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	if pred == nil {
		panic(errNilArgument("Ignore", "predicate"))
	}
	return cseq.Filter(src, func(v T) bool { return !pred(v) })
}

// --- Side effects ----------------------------------------------------------

// AfterEach calls action between two consecutive elements, i.e. after every
// element which has a successor. Action is called once the successor has
// been pulled, right before it is yielded.
func AfterEach[T any](src iter.Seq[T], action func()) iter.Seq[T] {
	if action == nil {
		panic(errNilArgument("AfterEach", "action"))
	}
	return func(yield func(T) bool) {
		first := true
		for v := range src {
			if !first {
				action()
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// OnFirst calls action with the first element before yielding it.
func OnFirst[T any](src iter.Seq[T], action func(T)) iter.Seq[T] {
	if action == nil {
		panic(errNilArgument("OnFirst", "action"))
	}
	return func(yield func(T) bool) {
		first := true
		for v := range src {
			if first {
				action(v)
				first = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// OnLast calls action with the last element before yielding it. OnLast
// looks ahead one element.
func OnLast[T any](src iter.Seq[T], action func(T)) iter.Seq[T] {
	if action == nil {
		panic(errNilArgument("OnLast", "action"))
	}
	return func(yield func(T) bool) {
		var last T
		held := false
		for v := range src {
			if held && !yield(last) {
				return
			}
			last, held = v, true
		}
		if held {
			action(last)
			yield(last)
		}
	}
}

// OnAdjacent calls action for every pair of adjacent elements, once the
// second element of the pair has been pulled.
func OnAdjacent[T any](src iter.Seq[T], action func(prev, curr T)) iter.Seq[T] {
	if action == nil {
		panic(errNilArgument("OnAdjacent", "action"))
	}
	return func(yield func(T) bool) {
		var prev T
		first := true
		for v := range src {
			if !first {
				action(prev, v)
			}
			prev, first = v, false
			if !yield(v) {
				return
			}
		}
	}
}

// --- Shape -----------------------------------------------------------------

// RemoveTail yields all elements of src but the last one.
func RemoveTail[T any](src iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev T
		held := false
		for v := range src {
			if held && !yield(prev) {
				return
			}
			prev, held = v, true
		}
	}
}

// AddIfEmpty yields the elements of src, or the result of factory if src is
// empty.
func AddIfEmpty[T any](src iter.Seq[T], factory func() T) iter.Seq[T] {
	if factory == nil {
		panic(errNilArgument("AddIfEmpty", "factory"))
	}
	return func(yield func(T) bool) {
		empty := true
		for v := range src {
			empty = false
			if !yield(v) {
				return
			}
		}
		if empty {
			yield(factory())
		}
	}
}

// IfEmpty yields the elements of src, or the elements of alt if src is empty.
func IfEmpty[T any](src, alt iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		empty := true
		for v := range src {
			empty = false
			if !yield(v) {
				return
			}
		}
		if empty {
			for v := range alt {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// AtLeast yields all elements of src if src holds at least n elements, and
// nothing otherwise. The first n elements are buffered. For n <= 0 nothing
// is yielded.
func AtLeast[T any](src iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return Of[T]()
	}
	return minimumCount(src, n)
}

// IfMoreThan yields all elements of src if src holds more than n elements,
// and nothing otherwise. For n <= 0 nothing is yielded.
func IfMoreThan[T any](src iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return Of[T]()
	}
	return minimumCount(src, n+1)
}

func minimumCount[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf := make([]T, 0, n)
		for v := range src {
			if len(buf) < n {
				buf = append(buf, v)
				if len(buf) < n {
					continue
				}
				for _, b := range buf {
					if !yield(b) {
						return
					}
				}
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// --- Replacing -------------------------------------------------------------

// Replace substitutes elements by position. Every pair carries a source
// position as its key and the replacement as its value. Positions beyond the
// end of src are ignored.
func Replace[T any](src iter.Seq[T], replacements ...foundation.Pair[int, T]) iter.Seq[T] {
	subst := make(map[int]T, len(replacements))
	for _, r := range replacements {
		subst[r.Key] = r.Value
	}
	return func(yield func(T) bool) {
		for i, v := range Enumerate(src) {
			if r, ok := subst[i]; ok {
				v = r
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ReplaceFunc substitutes every element by the result of fn, which receives
// the element and its position.
func ReplaceFunc[T any](src iter.Seq[T], fn func(v T, pos int) T) iter.Seq[T] {
	if fn == nil {
		panic(errNilArgument("ReplaceFunc", "replacement"))
	}
	return func(yield func(T) bool) {
		for i, v := range Enumerate(src) {
			if !yield(fn(v, i)) {
				return
			}
		}
	}
}

// --- Searching -------------------------------------------------------------

// FindUntil yields, for each predicate, the first element satisfying it.
// Iteration of src stops as soon as every predicate has found its element.
// An element satisfying more than one open predicate is yielded once.
func FindUntil[T any](src iter.Seq[T], preds ...func(T) bool) iter.Seq[T] {
	for _, p := range preds {
		if p == nil {
			panic(errNilArgument("FindUntil", "predicate"))
		}
	}
	return func(yield func(T) bool) {
		open := len(preds)
		if open == 0 {
			return
		}
		found := make([]bool, len(preds))
		for v := range src {
			hit := false
			for i, p := range preds {
				if !found[i] && p(v) {
					found[i], hit = true, true
					open--
				}
			}
			if hit && !yield(v) {
				return
			}
			if open == 0 {
				return
			}
		}
	}
}

// IsInAscendingOrder reports whether every element compares greater than or
// equal to its predecessor. compare follows the convention of cmp.Compare.
func IsInAscendingOrder[T any](src iter.Seq[T], compare func(a, b T) int) bool {
	if compare == nil {
		panic(errNilArgument("IsInAscendingOrder", "compare"))
	}
	var prev T
	first := true
	for v := range src {
		if !first && compare(prev, v) > 0 {
			return false
		}
		prev, first = v, false
	}
	return true
}

// MinMax returns the smallest and the largest element of src. ok is false
// for an empty source.
func MinMax[T cmp.Ordered](src iter.Seq[T]) (lo, hi T, ok bool) {
	for v := range src {
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return
}

// --- Combining -------------------------------------------------------------

// CartesianProduct yields every pair of an element of a and an element of b,
// ordered by a first. b is ranged over once per element of a.
func CartesianProduct[T, U any](a iter.Seq[T], b iter.Seq[U]) iter.Seq2[T, U] {
	return func(yield func(T, U) bool) {
		for x := range a {
			for y := range b {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// ZipWhere yields the result of combine for every pair of elements from a
// and b which match.
func ZipWhere[T, U, R any](a iter.Seq[T], b iter.Seq[U], match func(T, U) bool,
	combine func(T, U) R) iter.Seq[R] {
	//
	if match == nil {
		panic(errNilArgument("ZipWhere", "match"))
	}
	if combine == nil {
		panic(errNilArgument("ZipWhere", "combine"))
	}
	return func(yield func(R) bool) {
		for x, y := range CartesianProduct(a, b) {
			if match(x, y) && !yield(combine(x, y)) {
				return
			}
		}
	}
}

// Difference yields the symmetric difference of a and b: first the elements
// of a not contained in b, then the elements of b not contained in a.
func Difference[T comparable](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inA, inB := setOf(a), setOf(b)
		diff := cseq.Concat(
			cseq.Filter(a, func(v T) bool { return !inB[v] }),
			cseq.Filter(b, func(v T) bool { return !inA[v] }),
		)
		for v := range diff {
			if !yield(v) {
				return
			}
		}
	}
}

func setOf[T comparable](src iter.Seq[T]) map[T]bool {
	set := make(map[T]bool)
	for v := range cseq.Uniq(src) {
		set[v] = true
	}
	return set
}

// Distinct yields every value of src once, at its first appearance.
func Distinct[T comparable](src iter.Seq[T]) iter.Seq[T] {
	return cseq.Uniq(src)
}

// Duplicates yields the repeated occurrences of values, grouped by value in
// order of first appearance. If distinct is set, every duplicated value is
// yielded once.
//
// Duplicates consumes src completely before yielding anything.
func Duplicates[T comparable](src iter.Seq[T], distinct bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		groups := ToMultiMap(src, identity[T], identity[T])
		for _, bucket := range groups.Buckets() {
			if len(bucket) < 2 {
				continue
			}
			repeats := bucket[1:]
			if distinct {
				repeats = repeats[:1]
			}
			for _, v := range repeats {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// MostFrequent returns the values occurring most often in src, in order of
// first appearance, together with their number of occurrences.
func MostFrequent[T any, K comparable](src iter.Seq[T], key func(T) K) ([]T, int) {
	if key == nil {
		panic(errNilArgument("MostFrequent", "key"))
	}
	groups := make(map[K]int)
	var order []K
	var firsts []T
	for v := range src {
		k := key(v)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
			firsts = append(firsts, v)
		}
		groups[k]++
	}
	top := 0
	for _, n := range groups {
		top = max(top, n)
	}
	var result []T
	for i, k := range order {
		if groups[k] == top {
			result = append(result, firsts[i])
		}
	}
	return result, top
}

func identity[T any](v T) T {
	return v
}
