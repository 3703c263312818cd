package seq

import (
	"fmt"

	"github.com/npillmayer/foundation"
)

// errNilArgument creates the panic value for a nil function argument.
func errNilArgument(op, name string) error {
	return fmt.Errorf("%w: seq.%s: %s must not be nil", foundation.ErrInvalidArgument, op, name)
}

func mustBePositive(op, name string, n int) {
	if n <= 0 {
		panic(fmt.Errorf("%w: seq.%s: %s must be positive, is %d",
			foundation.ErrInvalidArgument, op, name, n))
	}
}
