/*
Package multimap provides maps from a key to an ordered bucket of values.

A Map keeps a key if and only if the key has at least one value. Removing
the last value of a bucket removes its key. Flattened iteration order is
stable as long as the map is not mutated: keys in insertion order, then
values in bucket insertion order.

Values are compared by a configurable equality. New uses == for comparable
value types, NewWithConfig accepts any equality function:

	m, err := multimap.NewWithConfig[string, []byte](multimap.Config[[]byte]{
	    Equal: bytes.Equal,
	})

KeyMap is the dual structure: a map which allows duplicate keys, each
carrying a single value, preserving insertion order.

Maps are not safe for concurrent mutation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package multimap

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.multimap'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.multimap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
