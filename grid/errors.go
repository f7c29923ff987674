package grid

import "errors"

var (
	// ErrConfiguration is returned when grid dimensions are unusable.
	ErrConfiguration = errors.New("grid: invalid configuration")
	// ErrOutOfRange is returned for coordinates outside [0,width) × [0,height).
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrNotInitialized is returned by cell operations on a grid with no cells.
	ErrNotInitialized = errors.New("grid: not initialized")
)
