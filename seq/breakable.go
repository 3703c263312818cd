package seq

import "iter"

// StopFlag is a cell shared between breakable iterations.
//
// Calling Stop from within any loop body terminates every breakable
// iteration over the flag which is in progress at that moment. Iterations
// started after Stop are not affected, so a flag may be re-used by the next
// round of an enclosing loop.
//
// A StopFlag is not safe for concurrent use.
type StopFlag struct {
	trips uint64 // incremented by every call to Stop
}

// NewStopFlag creates a stop flag.
func NewStopFlag() *StopFlag {
	return &StopFlag{}
}

// Stop signals all running breakable iterations over f to terminate.
func (f *StopFlag) Stop() {
	f.trips++
}

// Stopped reports whether Stop has ever been called.
func (f *StopFlag) Stopped() bool {
	return f.trips > 0
}

// Breakable wraps src into a sequence which terminates as soon as stop has
// been tripped while iterating. The flag is checked whenever the consumer
// returns from a loop body, before the next element is pulled from src.
// Elements already yielded are not affected.
//
// Breakable panics if stop is nil.
func Breakable[T any](src iter.Seq[T], stop *StopFlag) iter.Seq[T] {
	if stop == nil {
		panic(errNilArgument("Breakable", "stop flag"))
	}
	return func(yield func(T) bool) {
		start := stop.trips
		for v := range src {
			if !yield(v) {
				return
			}
			if stop.trips != start {
				tracer().Debugf("seq: breakable iteration stopped")
				return
			}
		}
	}
}
