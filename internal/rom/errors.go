package rom

import "errors"

var (
	// ErrOutOfRange is returned when a computed offset lies outside of the image capacity.
	ErrOutOfRange = errors.New("offset out of range")
	// ErrInvalidIndex is returned by decoders for a vehicle or world index outside of its valid range.
	ErrInvalidIndex = errors.New("invalid index")
)
