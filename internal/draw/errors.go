package draw

import "errors"

// Validation errors. Each is wrapped with the offending detail; the
// wrapped message is what the user sees.
var (
	ErrInvalidGridSize    = errors.New("grid size invalid")
	ErrInvalidCoordinates = errors.New("coordinates invalid")
	ErrCoordinateRange    = errors.New("coordinates out of range")
	ErrInvalidRadius      = errors.New("radius invalid")
	ErrRadiusRange        = errors.New("radius out of range")
	ErrUnknownMode        = errors.New("unknown draw mode")
)
