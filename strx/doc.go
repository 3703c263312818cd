/*
Package strx provides lazy string splitting and display-width aware line
wrapping.

Splitting functions return iter.Seq[string] and do not allocate a slice of
fields. Fields are substrings of the input.

Width and Wrap measure strings in fixed-width cells, following UAX#11
(East Asian Width). Wrap breaks text at line-break opportunities as found by
UAX#14 segmentation, using a first-fit strategy.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package strx

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.strx'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.strx")
}
