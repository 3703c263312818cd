package seq

import (
	"fmt"
	"iter"
	"slices"
)

// Unclaimed is the branch index of an element no branch predicate matched.
const Unclaimed = -1

// Outcome reports how a single element has been routed by a conditional.
type Outcome[T, R any] struct {
	Position int // position of the element within the source
	Branch   int // index of the claiming branch, or Unclaimed
	Value    T   // the source element
	Result   R   // output of the claiming branch; zero if unclaimed
}

// IsClaimed reports whether a branch claimed the element.
func (o Outcome[T, R]) IsClaimed() bool {
	return o.Branch != Unclaimed
}

func (o Outcome[T, R]) String() string {
	if !o.IsClaimed() {
		return fmt.Sprintf("#%d %v → else", o.Position, o.Value)
	}
	return fmt.Sprintf("#%d %v → branch %d: %v", o.Position, o.Value, o.Branch, o.Result)
}

// branch is a predicate together with the handler for elements it claims.
type branch[T, R any] struct {
	pred   func(T) bool
	handle func(T) R
}

// route is the router shared by all conditionals. Each element visits the
// branches in declaration order and is claimed by the first one whose
// predicate holds. The claiming handler is called at the time the element
// is pulled.
func route[T, R any](src iter.Seq[T], branches []branch[T, R]) iter.Seq[Outcome[T, R]] {
	return func(yield func(Outcome[T, R]) bool) {
		for i, v := range Enumerate(src) {
			o := Outcome[T, R]{Position: i, Branch: Unclaimed, Value: v}
			for k, b := range branches {
				if b.pred(v) {
					o.Branch, o.Result = k, b.handle(v)
					break
				}
			}
			if !yield(o) {
				return
			}
		}
	}
}

// --- Action variant --------------------------------------------------------

// Conditional executes side-effecting actions on the elements claimed by
// its branches. Create one with If.
//
// A Conditional is immutable: ElseIf returns a new Conditional. Nothing is
// evaluated until one of Else, ElseDo, EndIf or Outcomes is consumed.
// Every consumption routes src anew, so branch actions run once per
// consumption: ranging over Else twice, or calling EndIf twice, calls each
// action twice.
type Conditional[T any] struct {
	src      iter.Seq[T]
	branches []branch[T, T]
}

// If starts a conditional over src. Elements satisfying pred are handed to
// action and claimed.
//
// If panics if pred or action is nil.
func If[T any](src iter.Seq[T], pred func(T) bool, action func(T)) *Conditional[T] {
	c := &Conditional[T]{src: src}
	return c.ElseIf(pred, action)
}

// ElseIf adds a branch which sees only the elements not claimed by earlier
// branches.
//
// ElseIf panics if pred or action is nil.
func (c *Conditional[T]) ElseIf(pred func(T) bool, action func(T)) *Conditional[T] {
	if pred == nil {
		panic(errNilArgument("If", "predicate"))
	}
	if action == nil {
		panic(errNilArgument("If", "action"))
	}
	b := branch[T, T]{pred: pred, handle: func(v T) T {
		action(v)
		return v
	}}
	return &Conditional[T]{
		src:      c.src,
		branches: append(slices.Clip(c.branches), b),
	}
}

// Else yields the elements no branch claimed, unchanged and in source order.
// Branch actions run while the sequence is consumed.
func (c *Conditional[T]) Else() iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range route(c.src, c.branches) {
			if !o.IsClaimed() && !yield(o.Value) {
				return
			}
		}
	}
}

// ElseDo is like Else, but calls action for every unclaimed element before
// yielding it.
//
// ElseDo panics if action is nil.
func (c *Conditional[T]) ElseDo(action func(T)) iter.Seq[T] {
	if action == nil {
		panic(errNilArgument("Else", "action"))
	}
	return func(yield func(T) bool) {
		for v := range c.Else() {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// EndIf drains the conditional, running all branch actions.
// It returns the number of elements visited.
func (c *Conditional[T]) EndIf() int {
	n := 0
	for range route(c.src, c.branches) {
		n++
	}
	return n
}

// Outcomes reports the routing of every element, in source order.
func (c *Conditional[T]) Outcomes() iter.Seq[Outcome[T, T]] {
	return route(c.src, c.branches)
}

// --- Mapping variant -------------------------------------------------------

// MappedConditional maps the elements claimed by its branches to results of
// type R. Create one with IfMap.
//
// As with Conditional, selectors are called again for every consumption.
type MappedConditional[T, R any] struct {
	src      iter.Seq[T]
	branches []branch[T, R]
}

// IfMap starts a mapping conditional over src. Elements satisfying pred are
// claimed and mapped by selector.
//
// IfMap panics if pred or selector is nil.
func IfMap[T, R any](src iter.Seq[T], pred func(T) bool, selector func(T) R) *MappedConditional[T, R] {
	c := &MappedConditional[T, R]{src: src}
	return c.ElseIf(pred, selector)
}

// ElseIf adds a branch which sees only the elements not claimed by earlier
// branches.
//
// ElseIf panics if pred or selector is nil.
func (c *MappedConditional[T, R]) ElseIf(pred func(T) bool, selector func(T) R) *MappedConditional[T, R] {
	if pred == nil {
		panic(errNilArgument("IfMap", "predicate"))
	}
	if selector == nil {
		panic(errNilArgument("IfMap", "selector"))
	}
	return &MappedConditional[T, R]{
		src:      c.src,
		branches: append(slices.Clip(c.branches), branch[T, R]{pred: pred, handle: selector}),
	}
}

// Else yields a result for every element in source order: claimed elements
// are mapped by their branch, unclaimed ones by selector.
//
// Else panics if selector is nil.
func (c *MappedConditional[T, R]) Else(selector func(T) R) iter.Seq[R] {
	if selector == nil {
		panic(errNilArgument("Else", "selector"))
	}
	return func(yield func(R) bool) {
		for o := range route(c.src, c.branches) {
			r := o.Result
			if !o.IsClaimed() {
				r = selector(o.Value)
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Claimed yields the results of claimed elements only, in source order.
func (c *MappedConditional[T, R]) Claimed() iter.Seq[R] {
	return func(yield func(R) bool) {
		for o := range route(c.src, c.branches) {
			if o.IsClaimed() && !yield(o.Result) {
				return
			}
		}
	}
}

// Remaining yields the elements no branch claimed, in source order.
func (c *MappedConditional[T, R]) Remaining() iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range route(c.src, c.branches) {
			if !o.IsClaimed() && !yield(o.Value) {
				return
			}
		}
	}
}

// EndIf drains the conditional, evaluating all branch selectors.
// It returns the number of elements visited.
func (c *MappedConditional[T, R]) EndIf() int {
	n := 0
	for range route(c.src, c.branches) {
		n++
	}
	return n
}

// Outcomes reports the routing of every element, in source order.
func (c *MappedConditional[T, R]) Outcomes() iter.Seq[Outcome[T, R]] {
	return route(c.src, c.branches)
}
