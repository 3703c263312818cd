/*
Package dump renders multi-value maps and branch outcomes for humans.

Renderings are meant for debugging and test output. Console output aligns
columns by display width and may use colors; HTML output is a plain table.

	cfg := dump.ConfigFromTerminal()
	dump.MultiMap(os.Stdout, m, cfg)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'foundation.dump'.
func tracer() tracing.Trace {
	return tracing.Select("foundation.dump")
}
