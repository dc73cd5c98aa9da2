package native

import "errors"

// Package errors for native backend.
var (
	// ErrNoNativeWindow is returned when the surface handle does not carry
	// a native window.
	ErrNoNativeWindow = errors.New("native: handle has no native window")

	// ErrInvalidSize is returned when a dimension does not fit in int32.
	ErrInvalidSize = errors.New("native: invalid size")
)
