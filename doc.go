/*
Package foundation is a base library extension for Go programs which have to
deal with sequences and collections of values.

Foundation

Most of the package tree is organized around lazy sequences (iter.Seq) and
collections which group elements of such sequences. The root package holds
small value types used throughout the tree:

  - Option, an optional value, used as the "none" sentinel of failed lookups,
  - Result, a value or an error,
  - OneOf2 and OneOf3, discriminated unions of two or three types,
  - ByteString, an immutable, comparable byte sequence,
  - ArrayValue, an immutable slice wrapper with element-wise equality,
  - Pair, a key/value tuple.

Sub-packages:

  - multimap: maps from a key to an ordered bucket of values,
  - seq: lazy sequence combinators (enumeration, breakable iteration,
    if/else-if partitioning, dual ordinal streams, slicing),
  - txlist: a list decorator which records mutations and replays them on commit,
  - pubsub: subject-keyed subscription containers,
  - strx: lazy string splitting and Unicode-aware wrapping,
  - dump: console and HTML renderings for debugging.

Everything is single-threaded. Sequences are pull-based: nothing happens until
a consumer ranges over a sequence, and every new range restarts from the
source.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2022–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package foundation

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Error is an error type for the foundation module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrInvalidArgument is flagged whenever function parameters are invalid,
// e.g. a nil predicate handed to a sequence combinator.
const ErrInvalidArgument = Error("invalid argument")

// ErrInvalidOperation is flagged if an operation is not valid for the current
// state of a value, e.g. requesting the single element of an empty sequence.
const ErrInvalidOperation = Error("invalid operation")

// ErrIndexOutOfBounds is flagged whenever a position is outside of a
// collection's range.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrNone is returned when the value of an empty Option is requested.
const ErrNone = Error("option has no value")
