package seq

import (
	"fmt"
	"iter"
	"slices"
)

// Ordinal is an element tagged with its position in the source sequence.
// The position is the sole ordering key when streams are merged.
type Ordinal[T any] struct {
	Position int
	Value    T
	IsLeft   bool // element has not been claimed by a stage
}

func (o Ordinal[T]) String() string {
	return fmt.Sprintf("%d:%v", o.Position, o.Value)
}

// ToOrdinals tags the elements satisfying pred with their source position.
func ToOrdinals[T any](src iter.Seq[T], pred func(T) bool) iter.Seq[Ordinal[T]] {
	if pred == nil {
		panic(errNilArgument("ToOrdinals", "predicate"))
	}
	return func(yield func(Ordinal[T]) bool) {
		for i, v := range Enumerate(src) {
			if pred(v) && !yield(Ordinal[T]{Position: i, Value: v}) {
				return
			}
		}
	}
}

type dualStage[T, R any] struct {
	pred       func(T) bool
	mapMatched func(T) R
	exhaustive bool
}

// DualOrdinalStreams classifies a sequence in stages. Every stage moves the
// elements it matches from the left stream to the matched stream, mapping
// them on the way. Later stages only see what is left.
//
// A stage created with isExhaustive set to false does not consume its
// matches: they are reported as matched, but stay visible in the left
// stream and to later stages. In the merged stream, the earliest matching
// stage determines the result of an element.
//
// Everything is evaluated lazily in a single pass over the source whenever
// one of the streams is consumed.
type DualOrdinalStreams[T, R any] struct {
	src    iter.Seq[T]
	stages []dualStage[T, R]
}

// ToDualOrdinalStreams starts a dual stream classification with a first stage.
//
// ToDualOrdinalStreams panics if pred or mapIfMatched is nil.
func ToDualOrdinalStreams[T, R any](src iter.Seq[T], pred func(T) bool, mapIfMatched func(T) R,
	isExhaustive bool) *DualOrdinalStreams[T, R] {
	//
	d := &DualOrdinalStreams[T, R]{src: src}
	return d.FilterLeft(pred, mapIfMatched, isExhaustive)
}

// FilterLeft adds a stage which sees only the left stream of d.
// d itself is not modified.
//
// FilterLeft panics if pred or mapIfMatched is nil.
func (d *DualOrdinalStreams[T, R]) FilterLeft(pred func(T) bool, mapIfMatched func(T) R,
	isExhaustive bool) *DualOrdinalStreams[T, R] {
	//
	if pred == nil {
		panic(errNilArgument("FilterLeft", "predicate"))
	}
	if mapIfMatched == nil {
		panic(errNilArgument("FilterLeft", "mapping"))
	}
	st := dualStage[T, R]{pred: pred, mapMatched: mapIfMatched, exhaustive: isExhaustive}
	return &DualOrdinalStreams[T, R]{
		src:    d.src,
		stages: append(slices.Clip(d.stages), st),
	}
}

// Stages returns the number of classification stages.
func (d *DualOrdinalStreams[T, R]) Stages() int {
	return len(d.stages)
}

// Left yields the elements no exhaustive stage has claimed, unmapped and
// in source order.
func (d *DualOrdinalStreams[T, R]) Left() iter.Seq[Ordinal[T]] {
	return func(yield func(Ordinal[T]) bool) {
		for i, v := range Enumerate(d.src) {
			if d.claimedBy(v) >= 0 {
				continue
			}
			if !yield(Ordinal[T]{Position: i, Value: v, IsLeft: true}) {
				return
			}
		}
	}
}

// Matched yields the mapped elements of all stages in source order. An
// element matched by a non-exhaustive stage may be matched by later stages
// as well and will then appear more than once.
func (d *DualOrdinalStreams[T, R]) Matched() iter.Seq[Ordinal[R]] {
	return func(yield func(Ordinal[R]) bool) {
		for i, v := range Enumerate(d.src) {
			for _, st := range d.stages {
				if !st.pred(v) {
					continue
				}
				if !yield(Ordinal[R]{Position: i, Value: st.mapMatched(v)}) {
					return
				}
				if st.exhaustive {
					break
				}
			}
		}
	}
}

// MergeStreams merges the matched and left streams back into a single
// sequence, strictly ordered by source position. Elements matched by a stage
// are mapped by the earliest matching stage, remaining left elements by
// mapRemainingLeft. Every source position appears exactly once.
//
// MergeStreams panics if mapRemainingLeft is nil.
func (d *DualOrdinalStreams[T, R]) MergeStreams(mapRemainingLeft func(T) R) iter.Seq[R] {
	if mapRemainingLeft == nil {
		panic(errNilArgument("MergeStreams", "mapping"))
	}
	return func(yield func(R) bool) {
		for v := range d.src {
			var r R
			if k := d.firstMatch(v); k >= 0 {
				r = d.stages[k].mapMatched(v)
			} else {
				r = mapRemainingLeft(v)
			}
			if !yield(r) {
				return
			}
		}
	}
}

// firstMatch returns the index of the first stage matching v, or -1.
// Stages after an exhaustive stage never see its matches, so the first
// match is the same for both kinds of stages.
func (d *DualOrdinalStreams[T, R]) firstMatch(v T) int {
	for k, st := range d.stages {
		if st.pred(v) {
			return k
		}
	}
	return -1
}

// claimedBy returns the index of the exhaustive stage which consumes v, or -1.
func (d *DualOrdinalStreams[T, R]) claimedBy(v T) int {
	for k, st := range d.stages {
		if st.exhaustive && st.pred(v) {
			return k
		}
	}
	return -1
}
