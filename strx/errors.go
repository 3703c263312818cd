package strx

import (
	"fmt"

	"github.com/npillmayer/foundation"
)

func errNonPositiveWidth(width int) error {
	return fmt.Errorf("%w: strx.Wrap: width must be positive, is %d", foundation.ErrInvalidArgument, width)
}
