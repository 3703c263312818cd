/*
Package seq implements lazy combinators over Go iterators (iter.Seq).

Every combinator is pull-based: nothing is evaluated until a consumer ranges
over the resulting sequence, and every new range restarts from the source.
Sources may be infinite, as long as consumers stop early.

Combinators fall into a few families:

  - enumeration: Enumerate, EnumerateFrom and EnumerateCycle tag elements
    with a counter,
  - breakable iteration: Breakable wraps a sequence so that nested loops
    sharing a StopFlag can break out of each other,
  - conditional partitioning: If and IfMap route every element to the first
    branch whose predicate holds, with a final else for the rest,
  - dual ordinal streams: ToDualOrdinalStreams splits a sequence into a
    matched and a left stream, FilterLeft refines the left stream and
    MergeStreams restores the original order,
  - slicing: Slice chops a sequence into fixed-size chunks, SliceBy splits it
    by predicates.

The remaining operators are small helpers in the spirit of LINQ, e.g.
Duplicates, Difference, FindUntil or Replace.

Functions handed to a combinator must not be nil. Combinators check this
before any iteration takes place and panic with an error wrapping
foundation.ErrInvalidArgument. Errors depending on the data, like calling
Single on an empty sequence, are returned as values.

Nothing in this package is safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package seq

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.seq'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.seq")
}
