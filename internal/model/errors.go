package model

import "errors"

var (
	// ErrDegenerateGeometry means a required measured size is non-positive or non-finite
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnknownSurface means a notification referenced a surface that was never registered
	ErrUnknownSurface = errors.New("unknown surface")

	// ErrInvalidOffset means a scroll offset was NaN or infinite
	ErrInvalidOffset = errors.New("invalid scroll offset")
)
