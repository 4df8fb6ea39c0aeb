package overlay

import "errors"

var (
	// ErrInvalidChild is returned when an AsChild wrapper is not given
	// exactly one child node.
	ErrInvalidChild = errors.New("overlay: AsChild requires exactly one child node")
	// ErrNilCallback is returned when a behavior is registered without a callback.
	ErrNilCallback = errors.New("overlay: callback is nil")
	// ErrNilRegion is returned when the outside detector has no region ref.
	ErrNilRegion = errors.New("overlay: region ref is nil")
	// ErrNilSurface is returned when a behavior is registered without a surface.
	ErrNilSurface = errors.New("overlay: surface is nil")
)
