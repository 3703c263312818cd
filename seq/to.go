package seq

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/foundation"
	"github.com/npillmayer/foundation/multimap"
)

// ToMultiMap groups the elements of src into a multi-value map. Every
// element contributes the value value(t) to the bucket of key(t).
func ToMultiMap[T any, K, V comparable](src iter.Seq[T], key func(T) K, value func(T) V) *multimap.Map[K, V] {
	if key == nil {
		panic(errNilArgument("ToMultiMap", "key"))
	}
	if value == nil {
		panic(errNilArgument("ToMultiMap", "value"))
	}
	m := multimap.New[K, V]()
	for v := range src {
		m.Add(key(v), value(v))
	}
	return m
}

// ToOneToMany groups the elements of src into a multi-value map. Every
// element contributes all values of values(t) to the bucket of key(t).
func ToOneToMany[T any, K, V comparable](src iter.Seq[T], key func(T) K, values func(T) iter.Seq[V]) *multimap.Map[K, V] {
	if key == nil {
		panic(errNilArgument("ToOneToMany", "key"))
	}
	if values == nil {
		panic(errNilArgument("ToOneToMany", "values"))
	}
	m := multimap.New[K, V]()
	for t := range src {
		k := key(t)
		for v := range values(t) {
			m.Add(k, v)
		}
	}
	return m
}

// ToOneToOne flattens a one-to-many relation into pairs: for every element
// t, it yields (lhs(t), r) for every r in rhs(t).
func ToOneToOne[T, L, R any](src iter.Seq[T], lhs func(T) L, rhs func(T) iter.Seq[R]) iter.Seq2[L, R] {
	if lhs == nil {
		panic(errNilArgument("ToOneToOne", "lhs"))
	}
	if rhs == nil {
		panic(errNilArgument("ToOneToOne", "rhs"))
	}
	return func(yield func(L, R) bool) {
		for t := range src {
			l := lhs(t)
			for r := range rhs(t) {
				if !yield(l, r) {
					return
				}
			}
		}
	}
}

// ToOptions projects every element of src to an optional value.
func ToOptions[T, R any](src iter.Seq[T], project func(T) foundation.Option[R]) iter.Seq[foundation.Option[R]] {
	if project == nil {
		panic(errNilArgument("ToOptions", "projection"))
	}
	return func(yield func(foundation.Option[R]) bool) {
		for v := range src {
			if !yield(project(v)) {
				return
			}
		}
	}
}

// ToReadableString formats the elements of src with %v, separated by sep.
func ToReadableString[T any](src iter.Seq[T], sep string) string {
	var b strings.Builder
	for v := range AfterEach(src, func() { b.WriteString(sep) }) {
		fmt.Fprint(&b, v)
	}
	return b.String()
}
