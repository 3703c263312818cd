package multimap

import "errors"

var (
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("multimap: invalid configuration")
	// ErrBrokenInvariant is reported by Check if a map's internal state is inconsistent.
	ErrBrokenInvariant = errors.New("multimap: broken invariant")
)
