package svgeom

import "errors"

var (
	// ErrInvalidPath is returned when path data cannot be parsed.
	ErrInvalidPath = errors.New("invalid path data")

	// ErrInvalidTransform is returned when a transform list cannot be parsed.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrTessellation is returned when a polygon set cannot be triangulated.
	ErrTessellation = errors.New("tessellation failed")
)
